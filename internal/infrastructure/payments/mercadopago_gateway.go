package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"decora_festas/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates checkout preferences and returns their init
// point, which the dispatch email embeds as a "pay online" link.

type MercadoPagoGateway struct {
	client   preference.Client
	mockMode bool
}

var _ interfaces.IPaymentLinkGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePaymentLink(ctx context.Context, budgetID, title string, amount float64) (string, error) {
	if g != nil && g.mockMode {
		link := fmt.Sprintf("https://sandbox.mercadopago.local/checkout/%s", budgetID)
		log.Printf("[payment][gateway] mock link budget_id=%s amount=%.2f link=%s", budgetID, amount, link)
		return link, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	log.Printf("[payment][gateway] create preference budget_id=%s amount=%.2f", budgetID, amount)
	resp, err := g.client.Create(ctx, preference.Request{
		ExternalReference: budgetID,
		Items: []preference.ItemRequest{
			{
				Title:     title,
				Quantity:  1,
				UnitPrice: amount,
			},
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed budget_id=%s err=%v", budgetID, err)
		return "", err
	}

	link := resp.InitPoint
	if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") && resp.SandboxInitPoint != "" {
		link = resp.SandboxInitPoint
	}
	log.Printf("[payment][gateway] create success budget_id=%s preference_id=%s", budgetID, resp.ID)
	return link, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
