package fcmgr

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerFromEnv(t *testing.T) {
	os.Setenv("FC_ACCOUNT_ID", "123")
	os.Setenv("ALIBABA_CLOUD_ACCESS_KEY_ID", "akid")
	os.Setenv("ALIBABA_CLOUD_ACCESS_KEY_SECRET", "secret")
	os.Setenv("FC_ENDPOINT", "http://localhost:8080")
	defer func() {
		os.Unsetenv("FC_ACCOUNT_ID")
		os.Unsetenv("ALIBABA_CLOUD_ACCESS_KEY_ID")
		os.Unsetenv("ALIBABA_CLOUD_ACCESS_KEY_SECRET")
		os.Unsetenv("FC_ENDPOINT")
	}()

	mgr, err := NewManager(nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", mgr.Client.Endpoint())
}

func TestNewManagerMissingCredentials(t *testing.T) {
	os.Unsetenv("FC_ACCOUNT_ID")
	os.Unsetenv("ALIBABA_CLOUD_ACCESS_KEY_ID")
	os.Unsetenv("ALIBABA_CLOUD_ACCESS_KEY_SECRET")

	_, err := NewManager(nil)
	require.Error(t, err)
}

func TestNewManagerBadOptions(t *testing.T) {
	_, err := NewManager(map[string]interface{}{"config-file": 42})
	require.Error(t, err)

	_, err = NewManager(map[string]interface{}{"logger": "not a logger"})
	require.Error(t, err)
}
