package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/limelight-casting/limelight/internal/store"
)

// ErrNotFound is returned when the geocoder has no result for a query.
var ErrNotFound = errors.New("geocode: location not found")

// Point is a resolved reference point: coordinates plus a display name.
// It is attached transiently to ranking requests, never persisted.
type Point struct {
	Coordinates store.Coordinates `json:"coordinates"`
	Name        string            `json:"name"`
}

// Client resolves free-text locations to coordinates and back.
type Client interface {
	Forward(ctx context.Context, query string) (*Point, error)
	Reverse(ctx context.Context, lat, lon float64) (*Point, error)
}

// NominatimClient talks to a Nominatim-compatible geocoding service.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewNominatimClient(baseURL string) *NominatimClient {
	return &NominatimClient{
		baseURL:    baseURL,
		userAgent:  "limelight/1.0",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *NominatimClient) doReq(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("geocode GET %s: %d %s", path, resp.StatusCode, string(body))
	}
	return body, nil
}

// Forward resolves a free-text search to the best-matching coordinate.
func (c *NominatimClient) Forward(ctx context.Context, query string) (*Point, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", "1")

	data, err := c.doReq(ctx, "/search", params)
	if err != nil {
		return nil, err
	}

	var results []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, query)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad longitude %q: %w", results[0].Lon, err)
	}

	return &Point{
		Coordinates: store.Coordinates{Latitude: lat, Longitude: lon},
		Name:        results[0].DisplayName,
	}, nil
}

// Reverse resolves a coordinate to a human-readable place name.
func (c *NominatimClient) Reverse(ctx context.Context, lat, lon float64) (*Point, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	data, err := c.doReq(ctx, "/reverse", params)
	if err != nil {
		return nil, err
	}

	var result struct {
		Address struct {
			City    string `json:"city"`
			Town    string `json:"town"`
			Village string `json:"village"`
			State   string `json:"state"`
		} `json:"address"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	city := result.Address.City
	if city == "" {
		city = result.Address.Town
	}
	if city == "" {
		city = result.Address.Village
	}
	if city == "" {
		city = "Unknown"
	}

	name := city
	if result.Address.State != "" {
		name = city + ", " + result.Address.State
	}
	return &Point{
		Coordinates: store.Coordinates{Latitude: lat, Longitude: lon},
		Name:        name,
	}, nil
}
