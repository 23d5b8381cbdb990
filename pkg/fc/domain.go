package fc

import (
	"net/http"
	"net/url"
)

func domainPath(domainName string) string {
	return "/custom-domains/" + url.PathEscape(domainName)
}

func (c *Client) CreateCustomDomain(domain *CustomDomain) (*CustomDomain, error) {
	resp, err := c.Do(http.MethodPost, "/custom-domains", nil, JSONBody(domain), nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(CustomDomain)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCustomDomain(domainName string) (*CustomDomain, error) {
	resp, err := c.Do(http.MethodGet, domainPath(domainName), nil, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(CustomDomain)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateCustomDomain(domainName string, domain *CustomDomain) (*CustomDomain, error) {
	resp, err := c.Do(http.MethodPut, domainPath(domainName), nil, JSONBody(domain), nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(CustomDomain)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteCustomDomain(domainName string) error {
	_, err := c.Do(http.MethodDelete, domainPath(domainName), nil, nil, nil, nil)
	return err
}

func (c *Client) ListCustomDomains(opts *ListOptions) (*CustomDomainList, error) {
	resp, err := c.Do(http.MethodGet, "/custom-domains", opts.values(), nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(CustomDomainList)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}
