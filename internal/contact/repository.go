package contact

import (
	"context"

	"boxgym/internal/db"

	"github.com/redis/go-redis/v9"
)

type repository struct {
	rdb redis.Cmdable
}

func NewRepository(rdb redis.Cmdable) Repository {
	return &repository{rdb: rdb}
}

func (r *repository) SaveSubmission(ctx context.Context, s Submission) error {
	return db.SetJSON(ctx, r.rdb, db.ContactKey(s.ID), s)
}

func (r *repository) SaveSubscription(ctx context.Context, s Subscription) error {
	return db.SetJSON(ctx, r.rdb, db.NewsletterKey(s.Email), s)
}
