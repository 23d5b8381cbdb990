package fc

import (
	"net/http"
	"net/url"
)

func functionPath(serviceName, qualifier, functionName string) string {
	return servicePath(serviceName, qualifier) + "/functions/" + url.PathEscape(functionName)
}

func (c *Client) CreateFunction(serviceName string, function *Function) (*Function, error) {
	path := servicePath(serviceName, "") + "/functions"
	resp, err := c.Do(http.MethodPost, path, nil, JSONBody(function), nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(Function)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetFunction(serviceName, functionName, qualifier string) (*Function, error) {
	resp, err := c.Do(http.MethodGet, functionPath(serviceName, qualifier, functionName), nil, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(Function)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetFunctionCode returns the download location of the function's installed
// code package.
func (c *Client) GetFunctionCode(serviceName, functionName, qualifier string) (*FunctionCode, error) {
	path := functionPath(serviceName, qualifier, functionName) + "/code"
	resp, err := c.Do(http.MethodGet, path, nil, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(FunctionCode)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateFunction(serviceName, functionName string, function *Function) (*Function, error) {
	resp, err := c.Do(http.MethodPut, functionPath(serviceName, "", functionName), nil, JSONBody(function), nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(Function)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteFunction(serviceName, functionName string) error {
	_, err := c.Do(http.MethodDelete, functionPath(serviceName, "", functionName), nil, nil, nil, nil)
	return err
}

func (c *Client) ListFunctions(serviceName, qualifier string, opts *ListOptions) (*FunctionList, error) {
	path := servicePath(serviceName, qualifier) + "/functions"
	resp, err := c.Do(http.MethodGet, path, opts.values(), nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(FunctionList)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

// InvokeOptions tune a single function invocation.
type InvokeOptions struct {
	// Fire and forget instead of waiting for the function result.
	Async bool
	// Return a non-JSON function result as raw bytes.
	RawBuf bool
	// Extra call-level headers.
	Headers map[string]string
}

// InvokeFunction runs a function with the given event payload and returns
// the raw response envelope; the payload format is up to the function. A
// nil event invokes with an empty body.
func (c *Client) InvokeFunction(serviceName, functionName, qualifier string, event *Body, opts *InvokeOptions) (*Response, error) {
	path := functionPath(serviceName, qualifier, functionName) + "/invocations"

	headers := map[string]string{}
	var reqOpt *RequestOption
	if opts != nil {
		for key, value := range opts.Headers {
			headers[key] = value
		}
		if opts.Async {
			headers[headerInvocationType] = "Async"
		}
		reqOpt = &RequestOption{RawBuf: opts.RawBuf}
	}

	return c.Do(http.MethodPost, path, nil, event, headers, reqOpt)
}

// InvokeHTTPFunction calls a function behind an HTTP trigger through the
// service's proxy path. Unlike everywhere else, query parameters here are
// covered by the request signature.
func (c *Client) InvokeHTTPFunction(method, serviceName, qualifier, functionName, path string, query url.Values, body *Body, headers map[string]string, opt *RequestOption) (*Response, error) {
	proxyPath := "/proxy/" + qualifiedService(serviceName, qualifier) + "/" + url.PathEscape(functionName) + path
	return c.Do(method, proxyPath, query, body, headers, opt)
}
