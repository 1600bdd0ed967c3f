package fulfillment

import (
	"errors"
	"strings"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"
)

// CustomerRecord is the Customer Location Record kept by the commerce backend:
// where a customer wants the order and which point serves them. The id is
// assigned by the backend and empty until the record is created.
type CustomerRecord struct {
	id             string
	chatID         string
	location       kernel.Location
	address        string
	nearestPointID string
}

// NewCustomerRecord builds a record to be created. Address may be empty
// when the customer shared coordinates.
func NewCustomerRecord(chatID string, location kernel.Location, address, nearestPointID string) (CustomerRecord, error) {
	return RestoreCustomerRecord("", chatID, location, address, nearestPointID)
}

// RestoreCustomerRecord rebuilds a record read from the backend.
func RestoreCustomerRecord(id, chatID string, location kernel.Location, address, nearestPointID string) (CustomerRecord, error) {
	var errChat, errPoint error
	if strings.TrimSpace(chatID) == "" {
		errChat = errs.NewValueIsRequiredError("chat id")
	}
	if strings.TrimSpace(nearestPointID) == "" {
		errPoint = errs.NewValueIsRequiredError("nearest point id")
	}
	if err := errors.Join(errChat, location.Validate(), errPoint); err != nil {
		return CustomerRecord{}, err
	}

	return CustomerRecord{
		id:             id,
		chatID:         chatID,
		location:       location,
		address:        address,
		nearestPointID: nearestPointID,
	}, nil
}

func (r CustomerRecord) ID() string                { return r.id }
func (r CustomerRecord) ChatID() string            { return r.chatID }
func (r CustomerRecord) Location() kernel.Location { return r.location }
func (r CustomerRecord) Address() string           { return r.address }
func (r CustomerRecord) NearestPointID() string    { return r.nearestPointID }
