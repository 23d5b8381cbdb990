package fc

import (
	"net/http"
	"net/url"
	"strconv"
)

// PutProvisionConfig reserves target warm instances for the qualified
// function. The qualifier is required here: provisioning always addresses a
// specific version or alias.
func (c *Client) PutProvisionConfig(serviceName, qualifier, functionName string, target int64) (*ProvisionConfig, error) {
	path := functionPath(serviceName, qualifier, functionName) + "/provision-config"
	body := JSONBody(map[string]int64{"target": target})
	resp, err := c.Do(http.MethodPut, path, nil, body, nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(ProvisionConfig)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProvisionConfig(serviceName, qualifier, functionName string) (*ProvisionConfig, error) {
	path := functionPath(serviceName, qualifier, functionName) + "/provision-config"
	resp, err := c.Do(http.MethodGet, path, nil, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(ProvisionConfig)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProvisionConfigs lists provisioning across the account, optionally
// narrowed to one service/qualifier.
func (c *Client) ListProvisionConfigs(serviceName, qualifier string, limit int, nextToken string) (*ProvisionConfigList, error) {
	query := url.Values{}
	if serviceName != "" {
		query.Set("serviceName", serviceName)
	}
	if qualifier != "" {
		query.Set("qualifier", qualifier)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if nextToken != "" {
		query.Set("nextToken", nextToken)
	}
	resp, err := c.Do(http.MethodGet, "/provision-configs", query, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(ProvisionConfigList)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}
