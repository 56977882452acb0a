package order

// Capabilities are the order's own business-rule verdicts at save time. They are
// computed by the host (invoicing, shipping, credit memo rules) and treated as
// opaque inputs by the integrity hook.
type Capabilities struct {
	Canceled            bool
	CanUnhold           bool
	CanInvoice          bool
	CanShip             bool
	CanCreditmemo       bool
	InProcess           bool
	ForcedCanCreditmemo bool
}

// FulfillmentExhausted reports an order that is not canceled and can no longer be
// unheld, invoiced or shipped.
func (c Capabilities) FulfillmentExhausted() bool {
	return !c.Canceled && !c.CanUnhold && !c.CanInvoice && !c.CanShip
}
