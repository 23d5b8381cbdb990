package fc

// Service CRUD. These methods (and their siblings in function.go,
// trigger.go, ...) are mechanical path builders over Do; all request
// semantics live in request.go.

import (
	"net/http"
	"net/url"
	"strconv"
)

// ListOptions are the common pagination parameters of the list endpoints.
type ListOptions struct {
	Prefix    string
	StartKey  string
	NextToken string
	Limit     int
}

func (o *ListOptions) values() url.Values {
	query := url.Values{}
	if o == nil {
		return query
	}
	if o.Prefix != "" {
		query.Set("prefix", o.Prefix)
	}
	if o.StartKey != "" {
		query.Set("startKey", o.StartKey)
	}
	if o.NextToken != "" {
		query.Set("nextToken", o.NextToken)
	}
	if o.Limit > 0 {
		query.Set("limit", strconv.Itoa(o.Limit))
	}
	return query
}

// qualifiedService renders "name.qualifier" escaped for use as a single
// path segment. An empty qualifier addresses the unversioned service.
func qualifiedService(name, qualifier string) string {
	if qualifier != "" {
		name = name + "." + qualifier
	}
	return url.PathEscape(name)
}

func servicePath(name, qualifier string) string {
	return "/services/" + qualifiedService(name, qualifier)
}

func (c *Client) CreateService(service *Service) (*Service, error) {
	resp, err := c.Do(http.MethodPost, "/services", nil, JSONBody(service), nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(Service)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetService(name, qualifier string) (*Service, error) {
	resp, err := c.Do(http.MethodGet, servicePath(name, qualifier), nil, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(Service)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateService(name string, service *Service) (*Service, error) {
	resp, err := c.Do(http.MethodPut, servicePath(name, ""), nil, JSONBody(service), nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(Service)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteService(name string) error {
	_, err := c.Do(http.MethodDelete, servicePath(name, ""), nil, nil, nil, nil)
	return err
}

func (c *Client) ListServices(opts *ListOptions) (*ServiceList, error) {
	resp, err := c.Do(http.MethodGet, "/services", opts.values(), nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(ServiceList)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}
