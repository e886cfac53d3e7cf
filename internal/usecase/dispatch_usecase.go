package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"decora_festas/internal/domain/entities"
	"decora_festas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrChannelRequired      = errors.New("no dispatch channel selected")
	ErrChannelConflict      = errors.New("dispatch channels are mutually exclusive")
	ErrMissingEmail         = errors.New("no email on file for this client")
	ErrMissingPhone         = errors.New("no phone on file for this client")
	ErrNotConfirmedDispatch = errors.New("dispatch not confirmed")
	ErrMailerNotConfigured  = errors.New("email sender not configured")
	ErrLinksNotConfigured   = errors.New("deep link composer not configured")
)

// DispatchInput mirrors the compositor: the two channel toggles are mutually
// exclusive and confirmation stays disabled until exactly one is chosen.
type DispatchInput struct {
	Email         bool
	WhatsApp      bool
	CustomMessage string
	Confirmed     bool
}

// DispatchResult is the outcome of a confirmed dispatch. For the WhatsApp
// channel DeepLink carries the wa.me URL the caller opens in a new context;
// for the email channel the message has already been sent.
type DispatchResult struct {
	Budget      entities.Budget
	Channel     entities.NotificationChannel
	Subject     string
	Body        string
	DeepLink    string
	PaymentLink string
	Log         entities.NotificationLog
}

// IDispatchUseCase sends a budget summary to its client through exactly one
// channel and, on success, transitions the record to dispatched.

type IDispatchUseCase interface {
	Dispatch(ctx context.Context, budgetID string, in DispatchInput) (DispatchResult, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.NotificationLog, error)
}

type DispatchUseCase struct {
	budgets  IBudgetUseCase
	logs     interfaces.INotificationLogRepository
	mailer   interfaces.IEmailSender
	links    interfaces.IDeepLinkComposer
	payments interfaces.IPaymentLinkGateway
}

var _ IDispatchUseCase = (*DispatchUseCase)(nil)

// NewDispatchUseCase wires the dispatcher. The payment gateway is optional:
// when nil the email simply carries no checkout link.
func NewDispatchUseCase(
	budgets IBudgetUseCase,
	logs interfaces.INotificationLogRepository,
	mailer interfaces.IEmailSender,
	links interfaces.IDeepLinkComposer,
	payments interfaces.IPaymentLinkGateway,
) *DispatchUseCase {
	return &DispatchUseCase{budgets: budgets, logs: logs, mailer: mailer, links: links, payments: payments}
}

func (u *DispatchUseCase) Dispatch(ctx context.Context, budgetID string, in DispatchInput) (DispatchResult, error) {
	log.Printf("[dispatch][usecase] start budget_id=%s email=%t whatsapp=%t", budgetID, in.Email, in.WhatsApp)

	if !in.Email && !in.WhatsApp {
		return DispatchResult{}, ErrChannelRequired
	}
	if in.Email && in.WhatsApp {
		return DispatchResult{}, ErrChannelConflict
	}
	if !in.Confirmed {
		return DispatchResult{}, ErrNotConfirmedDispatch
	}

	b, err := u.budgets.GetByID(ctx, budgetID)
	if err != nil {
		log.Printf("[dispatch][usecase] budget lookup failed budget_id=%s err=%v", budgetID, err)
		return DispatchResult{}, err
	}

	// Contact requirements are checked before any network interaction.
	if in.Email && strings.TrimSpace(b.Email) == "" {
		return DispatchResult{}, ErrMissingEmail
	}
	if in.WhatsApp && strings.TrimSpace(b.Phone) == "" {
		return DispatchResult{}, ErrMissingPhone
	}

	res := DispatchResult{Budget: b}
	if in.Email {
		res, err = u.dispatchEmail(ctx, b, in.CustomMessage)
	} else {
		res, err = u.dispatchWhatsApp(b)
	}
	if err != nil {
		return DispatchResult{}, err
	}

	if err := u.persistLog(ctx, &res); err != nil {
		// The message already left; losing the audit record must not undo
		// the dispatch. Surface in logs only.
		log.Printf("[dispatch][usecase] audit log persist failed budget_id=%s err=%v", b.ID, err)
	}

	updated, err := u.budgets.MarkDispatched(ctx, b.ID)
	if err != nil {
		log.Printf("[dispatch][usecase] status side effect failed budget_id=%s err=%v", b.ID, err)
		return DispatchResult{}, err
	}
	res.Budget = updated

	log.Printf("[dispatch][usecase] success budget_id=%s channel=%s", b.ID, res.Channel)
	return res, nil
}

func (u *DispatchUseCase) dispatchEmail(ctx context.Context, b entities.Budget, custom string) (DispatchResult, error) {
	if u.mailer == nil {
		log.Printf("[dispatch][usecase] email sender not configured budget_id=%s", b.ID)
		return DispatchResult{}, ErrMailerNotConfigured
	}

	paymentLink := ""
	if u.payments != nil {
		link, err := u.payments.CreatePaymentLink(ctx, b.ID, EventSummaryTitle(b), b.EstimatedValue)
		if err != nil {
			// A checkout link is an enrichment, not a requirement.
			log.Printf("[dispatch][usecase] payment link unavailable budget_id=%s err=%v", b.ID, err)
		} else {
			paymentLink = link
		}
	}

	subject, body := ComposeEmail(b, custom, paymentLink)
	if err := u.mailer.Send(ctx, b.Email, subject, body); err != nil {
		log.Printf("[dispatch][usecase] email send failed budget_id=%s err=%v", b.ID, err)
		return DispatchResult{}, err
	}

	return DispatchResult{
		Budget:      b,
		Channel:     entities.ChannelEmail,
		Subject:     subject,
		Body:        body,
		PaymentLink: paymentLink,
	}, nil
}

func (u *DispatchUseCase) dispatchWhatsApp(b entities.Budget) (DispatchResult, error) {
	if u.links == nil {
		log.Printf("[dispatch][usecase] deep link composer not configured budget_id=%s", b.ID)
		return DispatchResult{}, ErrLinksNotConfigured
	}

	text := ComposeWhatsAppMessage(b)
	link, err := u.links.Compose(b.Phone, text)
	if err != nil {
		log.Printf("[dispatch][usecase] deep link compose failed budget_id=%s err=%v", b.ID, err)
		return DispatchResult{}, err
	}

	return DispatchResult{
		Budget:   b,
		Channel:  entities.ChannelWhatsApp,
		Body:     text,
		DeepLink: link,
	}, nil
}

func (u *DispatchUseCase) persistLog(ctx context.Context, res *DispatchResult) error {
	payload := map[string]interface{}{
		"channel": string(res.Channel),
		"body":    res.Body,
	}
	if res.Subject != "" {
		payload["subject"] = res.Subject
	}
	if res.DeepLink != "" {
		payload["deep_link"] = res.DeepLink
	}
	if res.PaymentLink != "" {
		payload["payment_link"] = res.PaymentLink
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	n := entities.NotificationLog{
		ID:         uuid.NewString(),
		BudgetID:   res.Budget.ID,
		Channel:    res.Channel,
		SentAt:     time.Now().UTC(),
		Subject:    res.Subject,
		PayloadRaw: raw,
		Payload:    payload,
	}
	created, err := u.logs.Create(ctx, n)
	if err != nil {
		return err
	}
	res.Log = created
	return nil
}

func (u *DispatchUseCase) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.NotificationLog, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return nil, ErrInvalidBudgetID
	}
	return u.logs.ListByBudgetID(ctx, budgetID)
}

// EventSummaryTitle is the short one-line label used for payment links and
// subjects.
func EventSummaryTitle(b entities.Budget) string {
	return fmt.Sprintf("%s - %s (%s)", b.Client, b.ServiceType.Label(), b.EventDate.Format("2006-01-02"))
}

// ComposeEmail builds the subject/body pair for the email channel. A
// non-empty custom message is prefixed verbatim before the templated summary.
func ComposeEmail(b entities.Budget, custom, paymentLink string) (subject, body string) {
	subject = fmt.Sprintf("Your decoration budget - %s", b.ServiceType.Label())

	var sb strings.Builder
	if c := strings.TrimSpace(custom); c != "" {
		sb.WriteString(c)
		sb.WriteString("\n\n")
	}
	sb.WriteString(fmt.Sprintf("Hello %s,\n\n", b.Client))
	sb.WriteString("Here is the budget for your event:\n\n")
	sb.WriteString(fmt.Sprintf("Service: %s\n", b.ServiceType.Label()))
	sb.WriteString(fmt.Sprintf("Date: %s at %s\n", b.EventDate.Format("2006-01-02"), b.EventTime))
	if b.EventLocation != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", b.EventLocation))
	}
	sb.WriteString(fmt.Sprintf("Estimated value: R$ %.2f\n", b.EstimatedValue))
	sb.WriteString(fmt.Sprintf("\nReview your request: %s\n", RecordLink(b.ID)))
	if paymentLink != "" {
		sb.WriteString(fmt.Sprintf("Pay online: %s\n", paymentLink))
	}
	return subject, sb.String()
}

// ComposeWhatsAppMessage builds the templated summary pre-filled into the
// deep link.
func ComposeWhatsAppMessage(b entities.Budget) string {
	return fmt.Sprintf(
		"Hello %s! Here is your decoration budget: %s on %s at %s, %s. Estimated value: R$ %.2f. Details: %s",
		b.Client,
		b.ServiceType.Label(),
		b.EventDate.Format("2006-01-02"),
		b.EventTime,
		b.EventLocation,
		b.EstimatedValue,
		RecordLink(b.ID),
	)
}

// RecordLink points back at the budget record for the client.
func RecordLink(id string) string {
	base := strings.TrimRight(os.Getenv("DASHBOARD_BASE_URL"), "/")
	if base == "" {
		base = "http://localhost:8080"
	}
	return fmt.Sprintf("%s/v1/budgets/%s", base, id)
}
