package fc

// Spot checks that the resource methods hit the right paths with the right
// verbs and payloads. The heavy request semantics are covered by
// request_test.go and response_test.go.

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method   string
	path     string
	rawQuery string
	header   http.Header
	body     []byte
}

func recordingServer(respBody string) (*httptest.Server, *recordedRequest) {
	rec := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.rawQuery = r.URL.RawQuery
		rec.header = r.Header
		rec.body, _ = ioutil.ReadAll(r.Body)
		w.Header().Set("content-type", "application/json")
		w.Write([]byte(respBody))
	}))
	return server, rec
}

func TestGetServicePath(t *testing.T) {
	server, rec := recordingServer(`{"serviceName":"mysvc"}`)
	defer server.Close()
	client := testClient(t, server.URL, nil)

	service, err := client.GetService("mysvc", "")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/2016-08-15/services/mysvc", rec.path)
	assert.Equal(t, "mysvc", service.ServiceName)
}

func TestGetServiceQualified(t *testing.T) {
	server, rec := recordingServer(`{}`)
	defer server.Close()
	client := testClient(t, server.URL, nil)

	_, err := client.GetService("mysvc", "prod")
	require.NoError(t, err)
	assert.Equal(t, "/2016-08-15/services/mysvc.prod", rec.path)
}

func TestListServicesQuery(t *testing.T) {
	server, rec := recordingServer(`{"services":[]}`)
	defer server.Close()
	client := testClient(t, server.URL, nil)

	_, err := client.ListServices(&ListOptions{Prefix: "my", Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, "limit=5&prefix=my", rec.rawQuery)
}

func TestCreateFunctionPathAndBody(t *testing.T) {
	server, rec := recordingServer(`{"functionName":"fn"}`)
	defer server.Close()
	client := testClient(t, server.URL, nil)

	_, err := client.CreateFunction("svc", &Function{FunctionName: "fn", Runtime: "python3"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/2016-08-15/services/svc/functions", rec.path)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	assert.Equal(t, "fn", sent["functionName"])
	assert.Equal(t, "python3", sent["runtime"])
}

func TestInvokeFunctionAsync(t *testing.T) {
	server, rec := recordingServer(`{}`)
	defer server.Close()
	client := testClient(t, server.URL, nil)

	_, err := client.InvokeFunction("svc", "fn", "prod", TextBody(`{"k":"v"}`), &InvokeOptions{Async: true})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/2016-08-15/services/svc.prod/functions/fn/invocations", rec.path)
	assert.Equal(t, "Async", rec.header.Get(headerInvocationType))
	assert.Equal(t, `{"k":"v"}`, string(rec.body))
}

func TestPublishVersion(t *testing.T) {
	server, rec := recordingServer(`{"versionId":"1"}`)
	defer server.Close()
	client := testClient(t, server.URL, nil)

	version, err := client.PublishVersion("svc", "first cut")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/2016-08-15/services/svc/versions", rec.path)
	assert.JSONEq(t, `{"description":"first cut"}`, string(rec.body))
	assert.Equal(t, "1", version.VersionID)
}

func TestUntagResourceSendsBody(t *testing.T) {
	server, rec := recordingServer(`{}`)
	defer server.Close()
	client := testClient(t, server.URL, nil)

	err := client.UntagResource(&UntagResourceInput{ResourceARN: "acs:fc:cn-test:123:services/svc", TagKeys: []string{"env"}})
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/2016-08-15/tag", rec.path)
	assert.JSONEq(t, `{"resourceArn":"acs:fc:cn-test:123:services/svc","tagKeys":["env"]}`, string(rec.body))
}

func TestGetResourceTagsQuery(t *testing.T) {
	server, rec := recordingServer(`{"resourceArn":"arn","tags":{}}`)
	defer server.Close()
	client := testClient(t, server.URL, nil)

	_, err := client.GetResourceTags("arn")
	require.NoError(t, err)
	assert.Equal(t, "resourceArn=arn", rec.rawQuery)
}

func TestPutProvisionConfig(t *testing.T) {
	server, rec := recordingServer(`{"resource":"r","target":5}`)
	defer server.Close()
	client := testClient(t, server.URL, nil)

	config, err := client.PutProvisionConfig("svc", "prod", "fn", 5)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/2016-08-15/services/svc.prod/functions/fn/provision-config", rec.path)
	assert.JSONEq(t, `{"target":5}`, string(rec.body))
	assert.Equal(t, int64(5), config.Target)
}

func TestPutFunctionAsyncConfig(t *testing.T) {
	server, rec := recordingServer(`{}`)
	defer server.Close()
	client := testClient(t, server.URL, nil)

	_, err := client.PutFunctionAsyncConfig("svc", "", "fn", &AsyncConfig{MaxAsyncRetryAttempts: 2})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/2016-08-15/services/svc/functions/fn/async-invoke-config", rec.path)
}

func TestDeleteCustomDomain(t *testing.T) {
	server, rec := recordingServer(`{}`)
	defer server.Close()
	client := testClient(t, server.URL, nil)

	require.NoError(t, client.DeleteCustomDomain("api.example.com"))
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/2016-08-15/custom-domains/api.example.com", rec.path)
}

func TestEscapedNamesInPaths(t *testing.T) {
	server, rec := recordingServer(`{}`)
	defer server.Close()
	client := testClient(t, server.URL, nil)

	_, err := client.GetFunction("my svc", "fn", "")
	require.NoError(t, err)
	// The wire path carries the escaped segment; the signature covers the
	// decoded form (see sign_test.go).
	assert.Equal(t, "/2016-08-15/services/my svc/functions/fn", rec.path)
}
