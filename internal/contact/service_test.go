package contact

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) SendContactAcknowledgement(ctx context.Context, email, name string) error {
	return m.Called(ctx, email, name).Error(0)
}

func (m *MockNotifier) SendNewsletterWelcome(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func setupService(t *testing.T, notifier Notifier) (*service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	svc := NewService(NewRepository(rdb), notifier).(*service)
	svc.now = func() time.Time { return time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC) }
	return svc, mr
}

func TestService_SubmitContact(t *testing.T) {
	notifier := new(MockNotifier)
	notifier.On("SendContactAcknowledgement", mock.Anything, "ana@example.com", "Ana").Return(nil)

	svc, mr := setupService(t, notifier)

	sub, err := svc.SubmitContact(context.Background(), ContactRequest{
		Name:    " Ana ",
		Email:   "ana@example.com",
		Phone:   "+1 415 555 0100",
		Message: "Do you offer youth classes?",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, StatusNew, sub.Status)

	raw, err := mr.Get("contact:" + sub.ID)
	require.NoError(t, err)

	var stored Submission
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, *sub, stored)
	assert.Equal(t, "Ana", stored.Name)

	notifier.AssertExpectations(t)
}

func TestService_SubmitContactNotifierFailureIsIgnored(t *testing.T) {
	notifier := new(MockNotifier)
	notifier.On("SendContactAcknowledgement", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("queue down"))

	svc, _ := setupService(t, notifier)

	_, err := svc.SubmitContact(context.Background(), ContactRequest{Name: "Ana", Email: "ana@example.com", Message: "hi"})
	assert.NoError(t, err)
}

func TestService_SubscribeNewsletterOverwrites(t *testing.T) {
	svc, mr := setupService(t, nil)
	ctx := context.Background()

	_, err := svc.SubscribeNewsletter(ctx, "Fan@Example.com")
	require.NoError(t, err)
	_, err = svc.SubscribeNewsletter(ctx, "fan@example.com ")
	require.NoError(t, err)

	keys := mr.Keys()
	assert.Equal(t, []string{"newsletter:fan@example.com"}, keys)

	raw, err := mr.Get("newsletter:fan@example.com")
	require.NoError(t, err)

	var stored Subscription
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.True(t, stored.Active)
	assert.Equal(t, "fan@example.com", stored.Email)
}

func TestService_StorageErrors(t *testing.T) {
	svc, mr := setupService(t, nil)
	mr.SetError("server down")

	_, err := svc.SubmitContact(context.Background(), ContactRequest{Name: "Ana", Email: "ana@example.com", Message: "hi"})
	assert.Error(t, err)

	_, err = svc.SubscribeNewsletter(context.Background(), "ana@example.com")
	assert.Error(t, err)
}
