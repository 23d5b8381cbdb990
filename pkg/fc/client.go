// Client library for the Function Compute HTTP API. All resource operations
// (services, functions, triggers, ...) funnel through a single signed
// dispatch path in request.go.
package fc

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Version of this client, reported in the user-agent header.
const Version = "0.1.0"

const (
	apiVersion = "2016-08-15"

	// Access key ids with this prefix are temporary (STS) credentials and
	// must come with a security token.
	stsKeyPrefix = "STS."

	endpointSuffix = ".fc.aliyuncs.com"

	defaultTimeout = 60 * time.Second
)

// Config carries the construction-time options for a Client. Everything
// here is immutable once the client is built.
type Config struct {
	AccountID       string
	Region          string
	AccessKeyID     string
	AccessKeySecret string

	// Required when AccessKeyID is a temporary (STS) credential.
	SecurityToken string

	// Full endpoint override, e.g. "http://localhost:8080". When empty the
	// endpoint is derived from AccountID and Region.
	Endpoint string

	// Use https for derived endpoints.
	Secure bool

	// Route through the internal (VPC) endpoint suffix.
	Internal bool

	// Bound on a single request round trip, including reading the response
	// body. Defaults to 60 seconds.
	Timeout time.Duration

	// Extra headers attached to every request. Call-level headers take
	// precedence over these.
	Headers map[string]string

	// Destination for debug output. Defaults to a fresh logrus logger.
	Logger logrus.FieldLogger
}

// Client issues authenticated requests against one account/region. It holds
// no mutable state, so a single instance is safe for concurrent use.
type Client struct {
	accountID       string
	accessKeyID     string
	accessKeySecret string
	securityToken   string

	endpoint string // scheme://host
	host     string

	headers    map[string]string
	userAgent  string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// NewClient validates cfg and builds a client. Credential problems are
// reported here as *ConfigError, before any request is made.
func NewClient(cfg Config) (*Client, error) {
	if cfg.AccountID == "" {
		return nil, &ConfigError{"account id is required"}
	}
	if cfg.AccessKeyID == "" {
		return nil, &ConfigError{"access key id is required"}
	}
	if cfg.AccessKeySecret == "" {
		return nil, &ConfigError{"access key secret is required"}
	}
	if strings.HasPrefix(cfg.AccessKeyID, stsKeyPrefix) && cfg.SecurityToken == "" {
		return nil, &ConfigError{"security token is required for temporary (STS) access keys"}
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		if cfg.Region == "" {
			return nil, &ConfigError{"region is required when no endpoint is given"}
		}
		endpoint = deriveEndpoint(cfg.AccountID, cfg.Region, cfg.Secure, cfg.Internal)
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &ConfigError{"endpoint is not a valid URL: " + endpoint}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.New()
	}

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[strings.ToLower(k)] = v
	}

	return &Client{
		accountID:       cfg.AccountID,
		accessKeyID:     cfg.AccessKeyID,
		accessKeySecret: cfg.AccessKeySecret,
		securityToken:   cfg.SecurityToken,
		endpoint:        u.Scheme + "://" + u.Host,
		host:            u.Host,
		headers:         headers,
		userAgent:       "fcgo/" + Version,
		httpClient:      &http.Client{Timeout: timeout},
		log:             log,
	}, nil
}

// Endpoint returns the resolved scheme://host this client talks to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

func deriveEndpoint(accountID, region string, secure, internal bool) string {
	scheme := "http"
	if secure {
		scheme = "https"
	}
	if internal {
		region += "-internal"
	}
	return scheme + "://" + accountID + "." + region + endpointSuffix
}
