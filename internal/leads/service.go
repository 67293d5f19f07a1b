package leads

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	errMissingDatabase   = errors.New("database handle is required")
	errMissingIDProvider = errors.New("id provider is required")
	errInvalidForm       = errors.New("form failed validation")
	errInvalidSource     = errors.New("unknown subscriber source")
	noOpLogger           = zap.NewNop()
)

// ServiceError carries a dotted operation code alongside the cause, so
// callers and logs can tell which persistence step failed.
type ServiceError struct {
	code string
	err  error
}

func (e *ServiceError) Error() string {
	if e.err == nil {
		return e.code
	}
	return fmt.Sprintf("%s: %v", e.code, e.err)
}

func (e *ServiceError) Unwrap() error {
	return e.err
}

func (e *ServiceError) Code() string {
	return e.code
}

const (
	opServiceNew       = "leads.service.new"
	opCreateContact    = "leads.create_contact"
	opRecordDownload   = "leads.record_download"
	opUpsertSubscriber = "leads.upsert_subscriber"
)

func newServiceError(operation, reason string, cause error) error {
	code := fmt.Sprintf("%s.%s", operation, reason)
	return &ServiceError{code: code, err: cause}
}

// ServiceConfig describes the dependencies required by the lead store.
type ServiceConfig struct {
	Database   *gorm.DB
	Clock      func() time.Time
	IDProvider IDProvider
	Logger     *zap.Logger
}

// Service persists contact submissions, download records and subscribers.
// Writes are best-effort collaborators of the request pipeline: callers log
// failures and continue.
type Service struct {
	db         *gorm.DB
	clock      func() time.Time
	idProvider IDProvider
	logger     *zap.Logger
}

// NewService constructs the lead store.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Database == nil {
		return nil, newServiceError(opServiceNew, "missing_database", errMissingDatabase)
	}
	if cfg.IDProvider == nil {
		return nil, newServiceError(opServiceNew, "missing_id_provider", errMissingIDProvider)
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = noOpLogger
	}

	return &Service{
		db:         cfg.Database,
		clock:      clock,
		idProvider: cfg.IDProvider,
		logger:     logger,
	}, nil
}

// CreateContactSubmission stores one contact-form message with status "new".
func (s *Service) CreateContactSubmission(ctx context.Context, form ContactForm, ipAddress, userAgent string) (ContactSubmission, error) {
	if violations := form.Validate(); len(violations) > 0 {
		return ContactSubmission{}, newServiceError(opCreateContact, "invalid_form", errInvalidForm)
	}

	id, err := s.idProvider.NewID()
	if err != nil {
		return ContactSubmission{}, newServiceError(opCreateContact, "id_generation_failed", err)
	}

	submission := ContactSubmission{
		ID:        id,
		Name:      strings.TrimSpace(form.Name),
		Email:     NormalizeEmail(form.Email),
		Company:   strings.TrimSpace(form.Company),
		Message:   form.Message,
		Status:    SubmissionStatusNew,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		CreatedAt: s.clock().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(&submission).Error; err != nil {
		s.logger.Error("contact submission insert failed",
			zap.String("email", submission.Email), zap.Error(err))
		return ContactSubmission{}, newServiceError(opCreateContact, "insert_failed", err)
	}

	return submission, nil
}

// RecordDownload appends one download-request row. Requests are never
// deduplicated; repeat downloads produce repeat rows.
func (s *Service) RecordDownload(ctx context.Context, form DownloadForm, ipAddress, userAgent string) (DownloadRecord, error) {
	if violations := form.Validate(); len(violations) > 0 {
		return DownloadRecord{}, newServiceError(opRecordDownload, "invalid_form", errInvalidForm)
	}

	id, err := s.idProvider.NewID()
	if err != nil {
		return DownloadRecord{}, newServiceError(opRecordDownload, "id_generation_failed", err)
	}

	record := DownloadRecord{
		ID:         id,
		Email:      NormalizeEmail(form.Email),
		Name:       form.DisplayName(),
		Company:    strings.TrimSpace(form.Company),
		ResourceID: form.ResourceID,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Subscribe:  form.Subscribe,
		CreatedAt:  s.clock().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		s.logger.Error("download record insert failed",
			zap.String("email", record.Email),
			zap.String("resource_id", record.ResourceID),
			zap.Error(err))
		return DownloadRecord{}, newServiceError(opRecordDownload, "insert_failed", err)
	}

	return record, nil
}

// UpsertSubscriber inserts or updates the subscriber row keyed by email.
// A new email creates an active row; a repeat email overwrites name, status
// and source and bumps updated_at, leaving created_at untouched.
func (s *Service) UpsertSubscriber(ctx context.Context, email, name string, source SubscriberSource) (Subscriber, error) {
	normalized := NormalizeEmail(email)
	if !ValidEmail(normalized) {
		return Subscriber{}, newServiceError(opUpsertSubscriber, "invalid_email", errInvalidForm)
	}
	switch source {
	case SourceNewsletter, SourceDownload, SourceContact:
	default:
		return Subscriber{}, newServiceError(opUpsertSubscriber, "invalid_source", errInvalidSource)
	}

	now := s.clock().UTC()
	subscriber := Subscriber{
		Email:     normalized,
		Name:      strings.TrimSpace(name),
		Status:    SubscriberStatusActive,
		Source:    source,
		Tags:      "[]",
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "status", "source", "updated_at"}),
	}).Create(&subscriber).Error
	if err != nil {
		s.logger.Error("subscriber upsert failed",
			zap.String("email", normalized), zap.Error(err))
		return Subscriber{}, newServiceError(opUpsertSubscriber, "upsert_failed", err)
	}

	var stored Subscriber
	if err := s.db.WithContext(ctx).Where("email = ?", normalized).Take(&stored).Error; err != nil {
		return Subscriber{}, newServiceError(opUpsertSubscriber, "reload_failed", err)
	}

	return stored, nil
}
