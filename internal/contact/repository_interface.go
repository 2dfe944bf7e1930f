package contact

import "context"

type Repository interface {
	SaveSubmission(ctx context.Context, s Submission) error
	// SaveSubscription replaces any previous subscription for the same address.
	SaveSubscription(ctx context.Context, s Subscription) error
}
