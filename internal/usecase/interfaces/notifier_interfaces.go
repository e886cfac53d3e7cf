package interfaces

import "context"

// IEmailSender abstracts the email channel (e.g. SMTP).

type IEmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// IDeepLinkComposer builds the second channel's deep link (a wa.me URL with
// a pre-encoded message). The link is opened by the caller in a new context,
// it is never sent programmatically by this service.
type IDeepLinkComposer interface {
	Compose(phone, message string) (string, error)
}
