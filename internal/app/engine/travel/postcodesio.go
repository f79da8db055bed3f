// internal/app/engine/travel/postcodesio.go
package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/atoengine/portal/internal/app/system/timeouts"
)

// DefaultPostcodesBaseURL is the public postcodes.io endpoint.
const DefaultPostcodesBaseURL = "https://api.postcodes.io"

// PostcodesClient geocodes UK postcodes via postcodes.io.
type PostcodesClient struct {
	BaseURL string
	HTTP    *http.Client
}

// NewPostcodesClient builds a client against the given base URL (empty means
// the public service).
func NewPostcodesClient(baseURL string) *PostcodesClient {
	if baseURL == "" {
		baseURL = DefaultPostcodesBaseURL
	}
	return &PostcodesClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeouts.Lookup()},
	}
}

type postcodeResponse struct {
	Status int `json:"status"`
	Result *struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"result"`
}

// Geocode resolves a postcode to WGS84 coordinates.
func (c *PostcodesClient) Geocode(ctx context.Context, postcode string) (float64, float64, error) {
	u := fmt.Sprintf("%s/postcodes/%s", c.BaseURL, url.PathEscape(postcode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, 0, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("postcode lookup returned %d", resp.StatusCode)
	}

	var body postcodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, 0, err
	}
	if body.Result == nil {
		return 0, 0, fmt.Errorf("postcode %q not found", postcode)
	}
	return body.Result.Latitude, body.Result.Longitude, nil
}
