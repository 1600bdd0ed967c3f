package dialog

// Callback tokens carried by keyboard buttons. Any other callback token is
// interpreted by the current state as a product or line-item id.
const (
	GotoMenu     = "goto_menu"
	GotoCart     = "goto_cart"
	GotoCheckout = "goto_checkout"
	GotoDelivery = "goto_delivery"
	GotoPickup   = "goto_pickup"
	GotoPayCash  = "goto_pay_cash"
	GotoPayCard  = "goto_pay_card"
)

// RestartCommand is the text command that resets a chat to Start.
const RestartCommand = "/start"

// IsControlToken reports whether token is one of the button tokens above
// rather than a product or line-item id.
func IsControlToken(token string) bool {
	switch token {
	case GotoMenu, GotoCart, GotoCheckout, GotoDelivery, GotoPickup, GotoPayCash, GotoPayCard:
		return true
	default:
		return false
	}
}
