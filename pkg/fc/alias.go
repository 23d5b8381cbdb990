package fc

import (
	"net/http"
	"net/url"
)

func aliasPath(serviceName, aliasName string) string {
	return servicePath(serviceName, "") + "/aliases/" + url.PathEscape(aliasName)
}

func (c *Client) CreateAlias(serviceName string, alias *Alias) (*Alias, error) {
	path := servicePath(serviceName, "") + "/aliases"
	resp, err := c.Do(http.MethodPost, path, nil, JSONBody(alias), nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(Alias)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAlias(serviceName, aliasName string) (*Alias, error) {
	resp, err := c.Do(http.MethodGet, aliasPath(serviceName, aliasName), nil, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(Alias)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateAlias(serviceName, aliasName string, alias *Alias) (*Alias, error) {
	resp, err := c.Do(http.MethodPut, aliasPath(serviceName, aliasName), nil, JSONBody(alias), nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(Alias)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteAlias(serviceName, aliasName string) error {
	_, err := c.Do(http.MethodDelete, aliasPath(serviceName, aliasName), nil, nil, nil, nil)
	return err
}

func (c *Client) ListAliases(serviceName string, opts *ListOptions) (*AliasList, error) {
	path := servicePath(serviceName, "") + "/aliases"
	resp, err := c.Do(http.MethodGet, path, opts.values(), nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(AliasList)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}
