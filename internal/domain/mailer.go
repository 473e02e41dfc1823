package domain

// Mailer sends transactional email. Implementations must be safe for
// concurrent use.
type Mailer interface {
	SendPasswordReset(to, resetURL string) error
}
