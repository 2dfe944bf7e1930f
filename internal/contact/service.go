package contact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"boxgym/internal/logger"
	"boxgym/internal/metrics"

	"github.com/google/uuid"
)

type Notifier interface {
	SendContactAcknowledgement(ctx context.Context, email, name string) error
	SendNewsletterWelcome(ctx context.Context, email string) error
}

type Service interface {
	SubmitContact(ctx context.Context, req ContactRequest) (*Submission, error)
	SubscribeNewsletter(ctx context.Context, email string) (*Subscription, error)
}

type service struct {
	repo     Repository
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Repository, notifier Notifier) Service {
	return &service{repo: repo, notifier: notifier, now: time.Now}
}

func (s *service) SubmitContact(ctx context.Context, req ContactRequest) (*Submission, error) {
	sub := Submission{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Message:     strings.TrimSpace(req.Message),
		SubmittedAt: s.now().UTC(),
		Status:      StatusNew,
	}

	if err := s.repo.SaveSubmission(ctx, sub); err != nil {
		return nil, fmt.Errorf("save contact submission: %w", err)
	}
	metrics.RecordContactSubmission()
	logger.Info("Contact form submitted", "contact_id", sub.ID)

	if s.notifier != nil {
		if err := s.notifier.SendContactAcknowledgement(ctx, sub.Email, sub.Name); err != nil {
			logger.Warn("Failed to queue contact acknowledgement", "contact_id", sub.ID, "error", err)
		}
	}

	return &sub, nil
}

func (s *service) SubscribeNewsletter(ctx context.Context, email string) (*Subscription, error) {
	sub := Subscription{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		SubscribedAt: s.now().UTC(),
		Active:       true,
	}

	if err := s.repo.SaveSubscription(ctx, sub); err != nil {
		return nil, fmt.Errorf("save newsletter subscription: %w", err)
	}
	metrics.RecordNewsletterSignup()

	if s.notifier != nil {
		if err := s.notifier.SendNewsletterWelcome(ctx, sub.Email); err != nil {
			logger.Warn("Failed to queue newsletter welcome", "error", err)
		}
	}

	return &sub, nil
}
