package fc

// Versions and aliases address deployed revisions of a service; either a
// version id or an alias name may be used as the qualifier in service and
// function paths.

import (
	"net/http"
	"net/url"
)

// PublishVersion snapshots the current service configuration and code as a
// new immutable version.
func (c *Client) PublishVersion(serviceName, description string) (*ServiceVersion, error) {
	path := servicePath(serviceName, "") + "/versions"
	body := JSONBody(map[string]string{"description": description})
	resp, err := c.Do(http.MethodPost, path, nil, body, nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(ServiceVersion)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListVersions(serviceName string, opts *ListOptions) (*VersionList, error) {
	path := servicePath(serviceName, "") + "/versions"
	resp, err := c.Do(http.MethodGet, path, opts.values(), nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(VersionList)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteVersion(serviceName, versionID string) error {
	path := servicePath(serviceName, "") + "/versions/" + url.PathEscape(versionID)
	_, err := c.Do(http.MethodDelete, path, nil, nil, nil, nil)
	return err
}
