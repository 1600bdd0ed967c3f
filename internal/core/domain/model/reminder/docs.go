// Package reminder models the follow-up message sent to a customer some time
// after a delivery order was passed to the courier.
package reminder
