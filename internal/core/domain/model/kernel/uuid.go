package kernel

import (
	"fmt"

	"orderbot/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned for the nil identifier.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("uuid")

// UUID identifies reminders. Ids issued by the commerce backend or the
// messenger are opaque strings and never go through this type.
type UUID struct {
	id uuid.UUID
}

func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// ParseUUID reads the textual form, rejecting the nil uuid.
func ParseUUID(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", err)
	}
	return RestoreUUID(id)
}

// RestoreUUID wraps a stored column value.
func RestoreUUID(id uuid.UUID) (UUID, error) {
	u := UUID{id: id}
	if err := u.Validate(); err != nil {
		return UUID{}, fmt.Errorf("restore %s: %w", id, err)
	}
	return u, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Value is the column value.
func (u UUID) Value() uuid.UUID {
	return u.id
}

func (u UUID) Equal(other UUID) bool {
	return u.id == other.id
}

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
