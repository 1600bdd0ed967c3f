// Package yandex implements ports.Geocoder over the Yandex geocoding HTTP API.
package yandex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/ports"
	"orderbot/internal/pkg/errs"
)

const service = "geocoder"

// DefaultBaseURL is the public geocoding endpoint.
const DefaultBaseURL = "https://geocode-maps.yandex.ru/1.x/"

// Geocoder resolves free-text addresses to coordinates.
type Geocoder struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewGeocoder creates the geocoder. An empty baseURL means DefaultBaseURL and
// a nil client means http.DefaultClient.
func NewGeocoder(baseURL, apiKey string, client *http.Client) (*Geocoder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errs.NewValueIsRequiredError("geocoder api key")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Geocoder{baseURL: baseURL, apiKey: apiKey, http: client}, nil
}

type geocodeResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// Geocode returns the coordinates of the best match. No match yields
// ports.ErrGeocodeUnresolved.
func (g *Geocoder) Geocode(ctx context.Context, address string) (kernel.Location, error) {
	if strings.TrimSpace(address) == "" {
		return kernel.Location{}, ports.ErrGeocodeUnresolved
	}

	query := url.Values{}
	query.Set("apikey", g.apiKey)
	query.Set("format", "json")
	query.Set("results", "1")
	query.Set("geocode", address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return kernel.Location{}, fmt.Errorf("create geocode request: %w", err)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return kernel.Location{}, errs.NewTransportErrorWithCause(service, "geocode", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		cause := fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return kernel.Location{}, errs.NewTransportErrorWithCause(service, "geocode", cause)
		}
		return kernel.Location{}, errs.NewDataErrorWithCause(service, "geocode", cause)
	}

	var decoded geocodeResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return kernel.Location{}, errs.NewDataErrorWithCause(service, "response", err)
	}

	members := decoded.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return kernel.Location{}, ports.ErrGeocodeUnresolved
	}

	return parsePos(members[0].GeoObject.Point.Pos)
}

// parsePos reads "<longitude> <latitude>".
func parsePos(pos string) (kernel.Location, error) {
	fields := strings.Fields(pos)
	if len(fields) != 2 {
		return kernel.Location{}, errs.NewDataErrorWithCause(service, "pos", fmt.Errorf("%q is not a coordinate pair", pos))
	}

	lon, errLon := strconv.ParseFloat(fields[0], 64)
	lat, errLat := strconv.ParseFloat(fields[1], 64)
	if errLon != nil || errLat != nil {
		return kernel.Location{}, errs.NewDataErrorWithCause(service, "pos", fmt.Errorf("%q is not a coordinate pair", pos))
	}

	loc, err := kernel.NewLocation(lat, lon)
	if err != nil {
		return kernel.Location{}, errs.NewDataErrorWithCause(service, "pos", err)
	}
	return loc, nil
}
