// internal/app/engine/travel/osrm.go
package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/atoengine/portal/internal/app/system/timeouts"
)

// DefaultOSRMBaseURL is the public OSRM demo server.
const DefaultOSRMBaseURL = "https://router.project-osrm.org"

// OSRMClient looks up driving routes via an OSRM server.
type OSRMClient struct {
	BaseURL string
	HTTP    *http.Client
}

// NewOSRMClient builds a client against the given base URL (empty means the
// public demo server).
func NewOSRMClient(baseURL string) *OSRMClient {
	if baseURL == "" {
		baseURL = DefaultOSRMBaseURL
	}
	return &OSRMClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeouts.Lookup()},
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"` // meters
	} `json:"routes"`
}

// DrivingDistanceMeters returns the one-way driving distance between two
// points. OSRM takes coordinates as lon,lat pairs.
func (c *OSRMClient) DrivingDistanceMeters(ctx context.Context, lat1, lon1, lat2, lon2 float64) (float64, error) {
	u := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		c.BaseURL, lon1, lat1, lon2, lat2)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("route lookup returned %d", resp.StatusCode)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	if body.Code != "Ok" || len(body.Routes) == 0 {
		return 0, fmt.Errorf("no driving route found")
	}
	return body.Routes[0].Distance, nil
}
