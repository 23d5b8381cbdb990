package fc

import (
	"net/http"
	"net/url"
)

func triggerPath(serviceName, functionName, triggerName string) string {
	return functionPath(serviceName, "", functionName) + "/triggers/" + url.PathEscape(triggerName)
}

func (c *Client) CreateTrigger(serviceName, functionName string, trigger *Trigger) (*Trigger, error) {
	path := functionPath(serviceName, "", functionName) + "/triggers"
	resp, err := c.Do(http.MethodPost, path, nil, JSONBody(trigger), nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(Trigger)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTrigger(serviceName, functionName, triggerName string) (*Trigger, error) {
	resp, err := c.Do(http.MethodGet, triggerPath(serviceName, functionName, triggerName), nil, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(Trigger)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateTrigger(serviceName, functionName, triggerName string, trigger *Trigger) (*Trigger, error) {
	resp, err := c.Do(http.MethodPut, triggerPath(serviceName, functionName, triggerName), nil, JSONBody(trigger), nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(Trigger)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteTrigger(serviceName, functionName, triggerName string) error {
	_, err := c.Do(http.MethodDelete, triggerPath(serviceName, functionName, triggerName), nil, nil, nil, nil)
	return err
}

func (c *Client) ListTriggers(serviceName, functionName string, opts *ListOptions) (*TriggerList, error) {
	path := functionPath(serviceName, "", functionName) + "/triggers"
	resp, err := c.Do(http.MethodGet, path, opts.values(), nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := new(TriggerList)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}
