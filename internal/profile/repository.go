package profile

import (
	"context"
	"errors"

	"boxgym/internal/db"

	"github.com/redis/go-redis/v9"
)

var ErrProfileNotFound = errors.New("profile not found")

type repository struct {
	rdb redis.Cmdable
}

func NewRepository(rdb redis.Cmdable) Repository {
	return &repository{rdb: rdb}
}

func (r *repository) Get(ctx context.Context, userID string) (*UserProfile, error) {
	var p UserProfile
	found, err := db.GetJSON(ctx, r.rdb, db.UserKey(userID), &p)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrProfileNotFound
	}
	return &p, nil
}

func (r *repository) Save(ctx context.Context, p UserProfile) error {
	return db.SetJSON(ctx, r.rdb, db.UserKey(p.ID), p)
}
