package ports

import (
	"context"
	"errors"

	"orderbot/internal/core/domain/model/kernel"
)

// ErrGeocodeUnresolved is returned when the geocoder found no coordinates for an address.
var ErrGeocodeUnresolved = errors.New("address could not be geocoded")

// Geocoder turns free-text addresses into coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (kernel.Location, error)
}
