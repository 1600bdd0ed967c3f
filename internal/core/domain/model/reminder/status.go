package reminder

import (
	"fmt"

	"orderbot/internal/pkg/errs"
)

// Status is the delivery state of a reminder.
//
//	Pending ──> Sent
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending reminders wait for their due time.
	Pending

	// Sent is final.
	Sent
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Pending: "Pending",
		Sent:    "Sent",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending: "Pending",
		Sent:    "Sent",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// MarkSent transitions Pending to Sent.
func (s Status) MarkSent() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to mark as sent", s.String()),
		)
	}

	return Sent, nil
}
