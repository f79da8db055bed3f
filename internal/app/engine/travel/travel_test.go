package travel_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atoengine/portal/internal/app/engine/travel"
	"github.com/atoengine/portal/internal/app/system/apperr"
)

type fakeGeocoder struct {
	coords map[string][2]float64
}

func (f *fakeGeocoder) Geocode(_ context.Context, postcode string) (float64, float64, error) {
	c, ok := f.coords[postcode]
	if !ok {
		return 0, 0, fmt.Errorf("postcode %q not found", postcode)
	}
	return c[0], c[1], nil
}

type fakeRouter struct {
	meters float64
	err    error
}

func (f *fakeRouter) DrivingDistanceMeters(_ context.Context, _, _, _, _ float64) (float64, error) {
	return f.meters, f.err
}

func TestResolveTravelCost(t *testing.T) {
	geo := &fakeGeocoder{coords: map[string][2]float64{
		"SW1A 1AA": {51.501, -0.142},
		"M1 1AE":   {53.478, -2.235},
	}}
	// 262,000 m ≈ 162.8 miles one way → 163 → 326 round trip.
	rv := travel.NewResolver(geo, &fakeRouter{meters: 262000})

	cost, miles, err := rv.ResolveTravelCost(context.Background(), "SW1A 1AA", "M1 1AE", 0.45)
	if err != nil {
		t.Fatalf("ResolveTravelCost failed: %v", err)
	}
	if miles != 326 {
		t.Errorf("miles: got %d, want 326", miles)
	}
	if cost != 146.70 {
		t.Errorf("cost: got %v, want 146.70", cost)
	}
}

func TestResolveTravelCost_InvalidPostcode(t *testing.T) {
	geo := &fakeGeocoder{coords: map[string][2]float64{"SW1A 1AA": {51.5, -0.14}}}
	rv := travel.NewResolver(geo, &fakeRouter{meters: 1000})

	_, _, err := rv.ResolveTravelCost(context.Background(), "NOPE", "SW1A 1AA", 0.45)
	if !errors.Is(err, apperr.ErrInvalidLocation) {
		t.Errorf("origin: got %v, want ErrInvalidLocation", err)
	}

	_, _, err = rv.ResolveTravelCost(context.Background(), "SW1A 1AA", "NOPE", 0.45)
	if !errors.Is(err, apperr.ErrInvalidLocation) {
		t.Errorf("destination: got %v, want ErrInvalidLocation", err)
	}
}

func TestResolveTravelCost_NoRoute(t *testing.T) {
	geo := &fakeGeocoder{coords: map[string][2]float64{
		"SW1A 1AA": {51.5, -0.14},
		"M1 1AE":   {53.48, -2.24},
	}}
	rv := travel.NewResolver(geo, &fakeRouter{err: fmt.Errorf("no driving route found")})

	_, _, err := rv.ResolveTravelCost(context.Background(), "SW1A 1AA", "M1 1AE", 0.45)
	if !errors.Is(err, apperr.ErrRoutingUnavailable) {
		t.Errorf("got %v, want ErrRoutingUnavailable", err)
	}
}

func TestPostcodesClient_Geocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/postcodes/SW1A%201AA" || r.URL.Path == "/postcodes/SW1A 1AA" {
			fmt.Fprint(w, `{"status":200,"result":{"latitude":51.501,"longitude":-0.142}}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"status":404,"error":"Postcode not found"}`)
	}))
	defer srv.Close()

	c := travel.NewPostcodesClient(srv.URL)

	lat, lon, err := c.Geocode(context.Background(), "SW1A 1AA")
	if err != nil {
		t.Fatalf("Geocode failed: %v", err)
	}
	if lat != 51.501 || lon != -0.142 {
		t.Errorf("coords: got (%v, %v)", lat, lon)
	}

	if _, _, err := c.Geocode(context.Background(), "ZZ9 9ZZ"); err == nil {
		t.Error("expected error for unknown postcode")
	}
}

func TestOSRMClient_DrivingDistanceMeters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":"Ok","routes":[{"distance":262000}]}`)
	}))
	defer srv.Close()

	c := travel.NewOSRMClient(srv.URL)
	meters, err := c.DrivingDistanceMeters(context.Background(), 51.5, -0.14, 53.48, -2.24)
	if err != nil {
		t.Fatalf("DrivingDistanceMeters failed: %v", err)
	}
	if meters != 262000 {
		t.Errorf("meters: got %v, want 262000", meters)
	}
}

func TestOSRMClient_NoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":"NoRoute","routes":[]}`)
	}))
	defer srv.Close()

	c := travel.NewOSRMClient(srv.URL)
	if _, err := c.DrivingDistanceMeters(context.Background(), 51.5, -0.14, 53.48, -2.24); err == nil {
		t.Error("expected error when no route found")
	}
}
