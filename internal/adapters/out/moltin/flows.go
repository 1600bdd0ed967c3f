package moltin

import (
	"context"
	"net/http"
	"net/url"

	"orderbot/internal/core/domain/model/fulfillment"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"
)

// ListFulfillmentPoints returns every entry of the points flow.
func (c *Client) ListFulfillmentPoints(ctx context.Context) ([]fulfillment.Point, error) {
	var dtos []pointEntryDTO
	if err := c.call(ctx, "list fulfillment points", http.MethodGet, c.entriesPath(c.cfg.PointsFlow), nil, &dtos, nil); err != nil {
		return nil, err
	}

	points := make([]fulfillment.Point, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toPoint(dto)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// GetFulfillmentPoint returns one entry of the points flow.
func (c *Client) GetFulfillmentPoint(ctx context.Context, pointID string) (fulfillment.Point, error) {
	var dto pointEntryDTO
	path := c.entriesPath(c.cfg.PointsFlow) + "/" + url.PathEscape(pointID)
	if err := c.call(ctx, "get fulfillment point", http.MethodGet, path, nil, &dto, nil); err != nil {
		return fulfillment.Point{}, err
	}
	return toPoint(dto)
}

// CreateCustomerRecord adds an entry to the customers flow.
func (c *Client) CreateCustomerRecord(ctx context.Context, record fulfillment.CustomerRecord) (string, error) {
	lat, lon := record.Location().Latitude(), record.Location().Longitude()
	req := struct {
		Data customerEntryDTO `json:"data"`
	}{Data: customerEntryDTO{
		Type:          "entry",
		ChatID:        record.ChatID(),
		Latitude:      &lat,
		Longitude:     &lon,
		Address:       record.Address(),
		NearestShopID: record.NearestPointID(),
	}}

	var created customerEntryDTO
	if err := c.call(ctx, "create customer record", http.MethodPost, c.entriesPath(c.cfg.CustomersFlow), req, &created, nil); err != nil {
		return "", err
	}
	if created.ID == "" {
		return "", errs.NewDataError(service, "customer record id")
	}
	return created.ID, nil
}

// GetCustomerRecord returns one entry of the customers flow.
func (c *Client) GetCustomerRecord(ctx context.Context, recordID string) (fulfillment.CustomerRecord, error) {
	var dto customerEntryDTO
	path := c.entriesPath(c.cfg.CustomersFlow) + "/" + url.PathEscape(recordID)
	if err := c.call(ctx, "get customer record", http.MethodGet, path, nil, &dto, nil); err != nil {
		return fulfillment.CustomerRecord{}, err
	}

	loc, err := toLocation(dto.Latitude, dto.Longitude, "customer record coordinates")
	if err != nil {
		return fulfillment.CustomerRecord{}, err
	}

	id := dto.ID
	if id == "" {
		id = recordID
	}
	record, err := fulfillment.RestoreCustomerRecord(id, dto.ChatID, loc, dto.Address, dto.NearestShopID)
	if err != nil {
		return fulfillment.CustomerRecord{}, errs.NewDataErrorWithCause(service, "customer record", err)
	}
	return record, nil
}

func (c *Client) entriesPath(flow string) string {
	return "/v2/flows/" + url.PathEscape(flow) + "/entries"
}

func toPoint(dto pointEntryDTO) (fulfillment.Point, error) {
	loc, err := toLocation(dto.Latitude, dto.Longitude, "fulfillment point coordinates")
	if err != nil {
		return fulfillment.Point{}, err
	}

	p, err := fulfillment.NewPoint(dto.ID, dto.Address, loc, dto.CourierTelegramID)
	if err != nil {
		return fulfillment.Point{}, errs.NewDataErrorWithCause(service, "fulfillment point", err)
	}
	return p, nil
}

func toLocation(lat, lon *float64, field string) (kernel.Location, error) {
	if lat == nil || lon == nil {
		return kernel.Location{}, errs.NewDataError(service, field)
	}
	loc, err := kernel.NewLocation(*lat, *lon)
	if err != nil {
		return kernel.Location{}, errs.NewDataErrorWithCause(service, field, err)
	}
	return loc, nil
}
