package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"decora_festas/internal/domain/entities"
	"decora_festas/internal/usecase/interfaces"
)

var (
	ErrProviderNotFound  = errors.New("provider not found")
	ErrInvalidProviderID = errors.New("invalid provider id")
	ErrNoReviewChannel   = errors.New("no notification channel selected")
)

// ReviewChannels selects where the outcome notification goes. Unlike the
// budget dispatch, the review notification may use either or both channels
// in a single action.
type ReviewChannels struct {
	Email    bool
	WhatsApp bool
}

// ReviewResult reports what was sent where. The provider's record status is
// updated; budget records are never touched by this flow.
type ReviewResult struct {
	Provider entities.Provider
	Subject  string
	Body     string
	DeepLink string
}

// IProviderReviewUseCase approves or rejects a registered decorator and
// notifies them of the outcome.

type IProviderReviewUseCase interface {
	Approve(ctx context.Context, providerID string, channels ReviewChannels) (ReviewResult, error)
	Reject(ctx context.Context, providerID string, channels ReviewChannels) (ReviewResult, error)
}

type ProviderReviewUseCase struct {
	repo   interfaces.IProviderRepository
	mailer interfaces.IEmailSender
	links  interfaces.IDeepLinkComposer
}

var _ IProviderReviewUseCase = (*ProviderReviewUseCase)(nil)

func NewProviderReviewUseCase(repo interfaces.IProviderRepository, mailer interfaces.IEmailSender, links interfaces.IDeepLinkComposer) *ProviderReviewUseCase {
	return &ProviderReviewUseCase{repo: repo, mailer: mailer, links: links}
}

func (u *ProviderReviewUseCase) Approve(ctx context.Context, providerID string, channels ReviewChannels) (ReviewResult, error) {
	return u.review(ctx, providerID, entities.ProviderApproved, channels)
}

func (u *ProviderReviewUseCase) Reject(ctx context.Context, providerID string, channels ReviewChannels) (ReviewResult, error) {
	return u.review(ctx, providerID, entities.ProviderRejected, channels)
}

func (u *ProviderReviewUseCase) review(ctx context.Context, providerID string, outcome entities.ProviderStatus, channels ReviewChannels) (ReviewResult, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return ReviewResult{}, ErrInvalidProviderID
	}
	if !channels.Email && !channels.WhatsApp {
		return ReviewResult{}, ErrNoReviewChannel
	}

	p, err := u.repo.GetByID(ctx, providerID)
	if err != nil {
		return ReviewResult{}, err
	}
	if p.ID == "" {
		return ReviewResult{}, ErrProviderNotFound
	}

	updated, err := u.repo.UpdateStatusByID(ctx, providerID, outcome)
	if err != nil {
		return ReviewResult{}, err
	}
	if updated.ID == "" {
		return ReviewResult{}, ErrProviderNotFound
	}
	log.Printf("[provider][usecase] review applied provider_id=%s outcome=%s", providerID, outcome)

	res := ReviewResult{Provider: updated}
	subject, body := ComposeReviewEmail(updated, outcome)
	message := ComposeReviewMessage(updated, outcome)

	if channels.Email {
		if err := u.mailer.Send(ctx, updated.Email, subject, body); err != nil {
			log.Printf("[provider][usecase] review email failed provider_id=%s err=%v", providerID, err)
			return ReviewResult{}, err
		}
		res.Subject = subject
		res.Body = body
	}
	if channels.WhatsApp {
		link, err := u.links.Compose(updated.Phone, message)
		if err != nil {
			log.Printf("[provider][usecase] review deep link failed provider_id=%s err=%v", providerID, err)
			return ReviewResult{}, err
		}
		res.DeepLink = link
	}
	return res, nil
}

// ComposeReviewEmail is the short-subject / long-body variant of the outcome
// notification.
func ComposeReviewEmail(p entities.Provider, outcome entities.ProviderStatus) (subject, body string) {
	if outcome == entities.ProviderApproved {
		subject = "Welcome aboard!"
		body = fmt.Sprintf(
			"Hello %s,\n\nGood news: your decorator registration was approved. "+
				"You can now receive event assignments through the platform.\n\nSee you soon!",
			p.Name,
		)
		return subject, body
	}
	subject = "About your registration"
	body = fmt.Sprintf(
		"Hello %s,\n\nThank you for your interest. After reviewing your decorator "+
			"registration we are unable to approve it at this time. "+
			"You are welcome to apply again in the future.\n",
		p.Name,
	)
	return subject, body
}

// ComposeReviewMessage is the long-form message-channel variant.
func ComposeReviewMessage(p entities.Provider, outcome entities.ProviderStatus) string {
	if outcome == entities.ProviderApproved {
		return fmt.Sprintf("Hello %s! Your decorator registration was approved. Welcome to the team!", p.Name)
	}
	return fmt.Sprintf("Hello %s. Unfortunately your decorator registration was not approved this time. Thank you for applying.", p.Name)
}
