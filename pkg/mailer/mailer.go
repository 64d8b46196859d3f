package mailer

import "context"

// Mailer sends the transactional mail this service produces. Delivery
// failures are returned to the caller so nothing is persisted for a code
// that never reached the user.
type Mailer interface {
	SendOTC(ctx context.Context, toEmail, code string) error
}
