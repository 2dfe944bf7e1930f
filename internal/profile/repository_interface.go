package profile

import "context"

type Repository interface {
	Get(ctx context.Context, userID string) (*UserProfile, error)
	Save(ctx context.Context, p UserProfile) error
}
