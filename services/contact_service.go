package services

import (
	"context"
	"fmt"

	"github.com/manish-reddy7/Manish-Reddy-Portfolio/config"
	apperrors "github.com/manish-reddy7/Manish-Reddy-Portfolio/errors"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/internal/store"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/logger"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/types"
	"github.com/prometheus/client_golang/prometheus"
)

// Pipeline stages, used for logging only. The caller never sees them.
const (
	stageRender       = "render"
	stageNotification = "notification"
	stageConfirmation = "confirmation"
)

type contactMetrics struct {
	submissions     *prometheus.CounterVec
	persistFailures prometheus.Counter
}

// ContactService relays one contact-form submission: validate, store
// (best effort), notify the owner, confirm to the submitter.
type ContactService struct {
	store   store.ContactStore
	mailer  types.EmailSender
	email   *config.EmailConfig
	profile *config.ProfileConfig
	metrics *contactMetrics
}

func NewContactService(s store.ContactStore, mailer types.EmailSender, email *config.EmailConfig, profile *config.ProfileConfig) *ContactService {
	return NewContactServiceWithRegistry(s, mailer, email, profile, prometheus.DefaultRegisterer)
}

func NewContactServiceWithRegistry(
	s store.ContactStore,
	mailer types.EmailSender,
	email *config.EmailConfig,
	profile *config.ProfileConfig,
	reg prometheus.Registerer,
) *ContactService {
	metrics := &contactMetrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_contact_submissions_total",
			Help: "Contact submissions by outcome",
		}, []string{"outcome"}),
		persistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_contact_persist_failures_total",
			Help: "Contact submissions that could not be stored",
		}),
	}
	reg.MustRegister(metrics.submissions, metrics.persistFailures)

	return &ContactService{
		store:   s,
		mailer:  mailer,
		email:   email,
		profile: profile,
		metrics: metrics,
	}
}

// Submit runs the pipeline for one request. It returns a VALIDATION_ERROR
// AppError for caller-correctable input and a TRANSPORT_ERROR AppError for
// everything that fails afterwards. A storage failure is logged and ignored.
func (s *ContactService) Submit(ctx context.Context, req types.ContactRequest) (*types.ContactSubmission, error) {
	log := logger.FromContext(ctx)

	req, err := ValidateContactRequest(req)
	if err != nil {
		s.metrics.submissions.WithLabelValues("invalid").Inc()
		log.Infow("Contact submission rejected", "reason", err.Error())
		return nil, err
	}

	if s.mailer == nil || s.email == nil || s.profile == nil {
		s.metrics.submissions.WithLabelValues("failed").Inc()
		return nil, apperrors.TransportFailed(fmt.Errorf("email delivery is not configured"), stageNotification)
	}

	sub := req.ToSubmission()
	s.persist(ctx, sub)

	notification, err := RenderNotification(s.email, sub)
	if err != nil {
		return nil, s.fail(ctx, err, stageRender)
	}
	confirmation, err := RenderConfirmation(s.email, s.profile, sub)
	if err != nil {
		return nil, s.fail(ctx, err, stageRender)
	}

	notificationID, err := s.mailer.Send(ctx, notification)
	if err != nil {
		return nil, s.fail(ctx, err, stageNotification)
	}

	confirmationID, err := s.mailer.Send(ctx, confirmation)
	if err != nil {
		return nil, s.fail(ctx, err, stageConfirmation)
	}

	s.metrics.submissions.WithLabelValues("sent").Inc()
	log.Infow("Emails sent successfully",
		"submission_id", sub.ID,
		"notification_id", notificationID,
		"confirmation_id", confirmationID,
		"submitter", logger.MaskEmail(sub.Email))

	return sub, nil
}

// persist stores sub. Email delivery must not depend on storage, so a
// failure here is only logged and counted.
func (s *ContactService) persist(ctx context.Context, sub *types.ContactSubmission) {
	log := logger.FromContext(ctx)

	if s.store == nil {
		s.metrics.persistFailures.Inc()
		log.Errorw("Contact submission not stored", "error", store.ErrNotConfigured)
		return
	}

	if err := s.store.CreateSubmission(ctx, sub); err != nil {
		s.metrics.persistFailures.Inc()
		log.Errorw("Database error, continuing with email delivery",
			"error", err,
			"submitter", logger.MaskEmail(sub.Email))
		return
	}

	log.Infow("Contact submission saved to database", "submission_id", sub.ID)
}

func (s *ContactService) fail(ctx context.Context, err error, stage string) error {
	s.metrics.submissions.WithLabelValues("failed").Inc()
	logger.FromContext(ctx).Errorw("Error in contact submission pipeline", "stage", stage, "error", err)
	return apperrors.TransportFailed(err, stage)
}
