package interfaces

import "context"

// INegotiationNotifier abstracts the outbound messaging channel (e.g. Twilio)
// used to hand a client's negotiation request to a human for follow-up.
//
// The workflow calls it fire-and-forget: delivery failure is logged, never
// propagated.
type INegotiationNotifier interface {
	SendNegotiation(ctx context.Context, quoteID, clientID, message string) error
}
