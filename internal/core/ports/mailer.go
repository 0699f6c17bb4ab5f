package ports

import "context"

// VerificationMail is a single verification message to be delivered.
type VerificationMail struct {
	To    string
	Name  string
	Token string
}

// Mailer delivers verification mail. Delivery is fire-and-forget from the
// caller's point of view: the queue implementation enqueues and returns
// immediately, the SMTP implementation blocks until sent.
type Mailer interface {
	SendVerification(ctx context.Context, mail VerificationMail) error
}
