package profile

import (
	"context"
	"errors"
)

// NameLookup reads display names from stored profiles for email greetings.
type NameLookup struct {
	repo Repository
}

func NewNameLookup(repo Repository) *NameLookup {
	return &NameLookup{repo: repo}
}

// LookupName returns "" without error when the user has no profile yet.
func (n *NameLookup) LookupName(ctx context.Context, userID string) (string, error) {
	p, err := n.repo.Get(ctx, userID)
	if errors.Is(err, ErrProfileNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return p.Name, nil
}
