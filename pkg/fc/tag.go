package fc

import (
	"net/http"
	"net/url"
)

// TagResource attaches tags to a service, identified by its resource ARN.
func (c *Client) TagResource(tags *ResourceTags) error {
	_, err := c.Do(http.MethodPost, "/tag", nil, JSONBody(tags), nil, nil)
	return err
}

// UntagResource removes tags from a resource. The service takes the keys in
// the request body of the DELETE.
func (c *Client) UntagResource(input *UntagResourceInput) error {
	_, err := c.Do(http.MethodDelete, "/tag", nil, JSONBody(input), nil, nil)
	return err
}

func (c *Client) GetResourceTags(resourceARN string) (*ResourceTags, error) {
	query := url.Values{}
	query.Set("resourceArn", resourceARN)
	resp, err := c.Do(http.MethodGet, "/tag", query, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(ResourceTags)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}
