package services

import (
	"context"
	"fmt"
	"time"

	"github.com/manish-reddy7/Manish-Reddy-Portfolio/config"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/logger"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/resend/resend-go/v2"
)

// resendEmails is the slice of the Resend emails API the service uses.
type resendEmails interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type EmailMetrics struct {
	sendLatency prometheus.Histogram
	errorCount  prometheus.Counter
	sentCount   prometheus.Counter
}

// EmailService sends rendered contact emails through Resend.
type EmailService struct {
	config  *config.EmailConfig
	client  *resend.Client
	emails  resendEmails
	metrics *EmailMetrics
}

var _ types.EmailSender = (*EmailService)(nil)

func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return NewEmailServiceWithRegistry(cfg, prometheus.DefaultRegisterer)
}

func NewEmailServiceWithRegistry(cfg *config.EmailConfig, reg prometheus.Registerer) *EmailService {
	logger.GetLogger().Infow("Initializing email service",
		"from", cfg.FromAddress,
		"owner", logger.MaskEmail(cfg.OwnerAddress),
		"apikey", logger.MaskSensitiveString(cfg.ResendAPIKey, 3, 3))

	client := resend.NewClient(cfg.ResendAPIKey)
	metrics := &EmailMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "portfolio_email_send_duration_seconds",
			Help:    "Time taken to send emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		errorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_email_errors_total",
			Help: "Total number of email sending errors",
		}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_emails_sent_total",
			Help: "Total number of emails sent",
		}),
	}

	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.errorCount)
	reg.MustRegister(metrics.sentCount)

	return &EmailService{
		config:  cfg,
		client:  client,
		emails:  client.Emails,
		metrics: metrics,
	}
}

// Send delivers msg through Resend. Errors are returned unwrapped enough for
// their text to reach the caller of the contact endpoint.
func (s *EmailService) Send(ctx context.Context, msg types.EmailMessage) (string, error) {
	startTime := time.Now()
	log := logger.FromContext(ctx)
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	if len(msg.To) == 0 {
		s.metrics.errorCount.Inc()
		return "", fmt.Errorf("email has no recipients")
	}

	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	resp, err := s.emails.SendWithContext(ctx, params)
	if err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to send email",
			"error", err,
			"to", maskRecipients(msg.To),
			"subject", msg.Subject)
		return "", err
	}

	var id string
	if resp != nil {
		id = resp.Id
	}

	s.metrics.sentCount.Inc()
	log.Infow("Email sent successfully",
		"id", id,
		"to", maskRecipients(msg.To),
		"subject", msg.Subject)

	return id, nil
}

func maskRecipients(to []string) []string {
	masked := make([]string, len(to))
	for i, addr := range to {
		masked[i] = logger.MaskEmail(addr)
	}
	return masked
}
