package clinicsdk

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// SDKClient is a client for the clinic booking API. It keeps the identity
// cookie between calls, so one SDKClient is one signed-in user.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// BearerToken, when set, is sent as an Authorization header on every
	// request. The server prefers the cookie when both are present.
	BearerToken string
}

// NewSDKClient creates a client with an empty cookie jar.
func NewSDKClient(baseURL string) (*SDKClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Cookie returns the value of the named cookie the server last set for the
// base URL, or "" when there is none.
func (c *SDKClient) Cookie(name string) string {
	if c.HTTPClient.Jar == nil {
		return ""
	}

	req, err := http.NewRequest(http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return ""
	}
	for _, ck := range c.HTTPClient.Jar.Cookies(req.URL) {
		if ck.Name == name {
			return ck.Value
		}
	}
	return ""
}
