package interfaces

import "context"

// IPaymentLinkGateway abstracts external payment providers (e.g. Mercado
// Pago preferences). The dispatch email embeds the returned checkout link so
// the client can settle the estimated value directly.
type IPaymentLinkGateway interface {
	CreatePaymentLink(ctx context.Context, budgetID, title string, amount float64) (link string, err error)
}
