package interfaces

import "context"

// ICodeDelivery abstracts the external channel that sends reset codes to the
// customer (e.g. Resend e-mail).
//
// Delivery is fire-and-forget from the flow's perspective: a failure is
// reported but never invalidates a code that was already recorded.
type ICodeDelivery interface {
	Deliver(ctx context.Context, email, code string) error
}
