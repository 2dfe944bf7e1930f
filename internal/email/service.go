package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/smtp"
	"time"

	"boxgym/internal/logger"
	"boxgym/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	queueKey       = "emails"
	failedQueueKey = "emails:failed"
	maxTries       = 3
)

const (
	TypeBookingConfirmation = "booking_confirmation"
	TypeCancellation        = "booking_cancellation"
	TypeContactAck          = "contact_ack"
	TypeNewsletterWelcome   = "newsletter_welcome"
)

type EmailJob struct {
	Type    string    `json:"type"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Config struct {
	Enabled  bool
	From     string
	FromName string
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type Service struct {
	redis      redis.Cmdable
	cfg        Config
	send       sendFunc
	retryDelay time.Duration
}

func New(cfg Config, rdb redis.Cmdable) *Service {
	return &Service{
		redis:      rdb,
		cfg:        cfg,
		send:       smtp.SendMail,
		retryDelay: 5 * time.Second,
	}
}

// Send queues a message. With email disabled it is a no-op.
func (s *Service) Send(ctx context.Context, emailType, to, name, subject, body string) error {
	if !s.cfg.Enabled {
		logger.Debug("Email disabled, dropping message", "type", emailType, "to", to)
		return nil
	}

	job := EmailJob{
		Type:    emailType,
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal email job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, string(data)).Err(); err != nil {
		logger.Errorf("Failed to queue email to %s: %v", to, err)
		metrics.RecordEmail(emailType, "queue_error")
		return fmt.Errorf("queue email: %w", err)
	}

	metrics.RecordEmail(emailType, "queued")
	logger.Infof("Email queued: %s to %s", subject, to)
	return nil
}

// Start consumes the queue until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	logger.Info("Email worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email worker stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) || ctx.Err() != nil {
			return
		}
		logger.Warn("Email queue unavailable, backing off", "error", err, "retry_in", s.retryDelay)
		s.wait(ctx)
		return
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email data: %v", err)
		return
	}

	job.Tries++
	logger.Debugf("Sending email to %s (attempt %d)", job.To, job.Tries)
	if err := s.sendNow(job); err != nil {
		logger.Errorf("Failed to send email to %s: %v", job.To, err)

		if job.Tries < maxTries {
			s.requeue(ctx, job)
		} else {
			logger.Errorf("Email to %s failed after %d attempts", job.To, maxTries)
			s.saveFailed(ctx, job, err)
		}
		return
	}

	metrics.RecordEmail(job.Type, "sent")
	logger.Infof("Email sent successfully to %s", job.To)
}

// wait sleeps for retryDelay or until ctx is done.
func (s *Service) wait(ctx context.Context) {
	t := time.NewTimer(s.retryDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (s *Service) requeue(ctx context.Context, job EmailJob) {
	s.wait(ctx)

	data, _ := json.Marshal(job)
	if err := s.redis.LPush(context.WithoutCancel(ctx), queueKey, string(data)).Err(); err != nil {
		logger.Errorf("Failed to requeue email to %s: %v", job.To, err)
		return
	}
	metrics.RecordEmail(job.Type, "retry")
	logger.Infof("Retrying email to %s (attempt %d)", job.To, job.Tries+1)
}

func (s *Service) sendNow(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.cfg.SMTPUser != "" && s.cfg.SMTPPass != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	}

	addr := s.cfg.SMTPHost + ":" + s.cfg.SMTPPort
	return s.send(addr, auth, s.cfg.From, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(ctx context.Context, job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.WithoutCancel(ctx), failedQueueKey, string(data))
	metrics.RecordEmail(job.Type, "failed")
	logger.Errorf("Email moved to failed queue: %s", job.To)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	metrics.EmailQueueLength.Set(float64(length))
	return length
}

func greeting(name string) string {
	if name == "" {
		return "there"
	}
	return name
}

func (s *Service) SendBookingConfirmation(ctx context.Context, email, name, className, day, at string) error {
	subject := "Booking Confirmed - " + className
	body := fmt.Sprintf(`Hi %s,

Your spot is confirmed!

Class: %s
When: %s at %s

Bring wraps and water. See you on the mat!

- 3rd Street Boxing Gym`, greeting(name), className, day, at)

	return s.Send(ctx, TypeBookingConfirmation, email, name, subject, body)
}

func (s *Service) SendCancellation(ctx context.Context, email, name, className, day, at string) error {
	subject := "Booking Cancelled - " + className
	body := fmt.Sprintf(`Hi %s,

Your booking has been cancelled and your spot released:

Class: %s
When: %s at %s

- 3rd Street Boxing Gym`, greeting(name), className, day, at)

	return s.Send(ctx, TypeCancellation, email, name, subject, body)
}

func (s *Service) SendContactAcknowledgement(ctx context.Context, email, name string) error {
	subject := "We got your message"
	body := fmt.Sprintf(`Hi %s,

Thanks for reaching out. A coach will get back to you within one business day.

- 3rd Street Boxing Gym`, greeting(name))

	return s.Send(ctx, TypeContactAck, email, name, subject, body)
}

func (s *Service) SendNewsletterWelcome(ctx context.Context, email string) error {
	subject := "Welcome to the 3rd Street newsletter"
	body := `Hi there,

You're on the list. Expect schedule updates, fight nights and member spotlights.

- 3rd Street Boxing Gym`

	return s.Send(ctx, TypeNewsletterWelcome, email, "", subject, body)
}
