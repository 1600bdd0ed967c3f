// Package ordering contains the application components the dialog controller
// drives: FulfillmentResolver (where does the order go), CartAggregator (what
// is in the cart) and CheckoutOrchestrator (how is it handed over and paid).
// The view helpers build the outbound messages shared by the state handlers.
package ordering
