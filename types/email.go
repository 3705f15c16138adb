package types

import "context"

// EmailSender delivers one rendered email and returns the provider's message id.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) (string, error)
}

// EmailMessage is a fully rendered email ready for the transport.
type EmailMessage struct {
	From    string
	To      []string
	Subject string
	HTML    string
}
