package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"decora_festas/internal/usecase/interfaces"
)

var ErrInvalidPhone = errors.New("phone has no usable digits")

// DeepLinkComposer builds wa.me links carrying a pre-encoded message. The
// link is handed back to the caller and opened in a new context; WhatsApp
// itself does the sending.
type DeepLinkComposer struct{}

var _ interfaces.IDeepLinkComposer = (*DeepLinkComposer)(nil)

func NewDeepLinkComposer() *DeepLinkComposer {
	return &DeepLinkComposer{}
}

// Compose normalizes the phone to wa.me's digits-only form and URL-encodes
// the message text.
func (c *DeepLinkComposer) Compose(phone, message string) (string, error) {
	digits := normalizePhone(phone)
	if digits == "" {
		return "", ErrInvalidPhone
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message)), nil
}

func normalizePhone(phone string) string {
	var sb strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
