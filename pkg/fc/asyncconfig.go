package fc

import "net/http"

// Async-invoke configuration controls what happens to asynchronous
// invocations: event age and retry bounds plus success/failure
// destinations.

func asyncConfigPath(serviceName, qualifier, functionName string) string {
	return functionPath(serviceName, qualifier, functionName) + "/async-invoke-config"
}

func (c *Client) PutFunctionAsyncConfig(serviceName, qualifier, functionName string, config *AsyncConfig) (*AsyncConfig, error) {
	resp, err := c.Do(http.MethodPut, asyncConfigPath(serviceName, qualifier, functionName), nil, JSONBody(config), nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(AsyncConfig)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetFunctionAsyncConfig(serviceName, qualifier, functionName string) (*AsyncConfig, error) {
	resp, err := c.Do(http.MethodGet, asyncConfigPath(serviceName, qualifier, functionName), nil, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(AsyncConfig)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteFunctionAsyncConfig(serviceName, qualifier, functionName string) error {
	_, err := c.Do(http.MethodDelete, asyncConfigPath(serviceName, qualifier, functionName), nil, nil, nil, nil)
	return err
}

func (c *Client) ListFunctionAsyncConfigs(serviceName, functionName string, opts *ListOptions) (*AsyncConfigList, error) {
	path := functionPath(serviceName, "", functionName) + "/async-invoke-configs"
	resp, err := c.Do(http.MethodGet, path, opts.values(), nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(AsyncConfigList)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}
