package leads

import (
	"context"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gorm.io/gorm"
)

func newTestService(t *testing.T, clock func() time.Time) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&ContactSubmission{}, &DownloadRecord{}, &Subscriber{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	service, err := NewService(ServiceConfig{
		Database:   db,
		Clock:      clock,
		IDProvider: NewUUIDProvider(),
	})
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return service, db
}

func TestCreateContactSubmissionPersistsRow(t *testing.T) {
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	service, db := newTestService(t, func() time.Time { return at })

	form := ContactForm{
		Name:    "Dana Smith",
		Email:   "Dana@Example.com",
		Company: "Example Co",
		Message: "I would like to learn more about your tools.",
	}
	submission, err := service.CreateContactSubmission(context.Background(), form, "203.0.113.9", "test-agent")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if submission.ID == "" {
		t.Fatal("expected a generated id")
	}

	var stored ContactSubmission
	if err := db.Take(&stored).Error; err != nil {
		t.Fatalf("failed to load stored row: %v", err)
	}

	expected := ContactSubmission{
		ID:        submission.ID,
		Name:      "Dana Smith",
		Email:     "dana@example.com",
		Company:   "Example Co",
		Message:   form.Message,
		Status:    SubmissionStatusNew,
		IPAddress: "203.0.113.9",
		UserAgent: "test-agent",
		CreatedAt: at,
	}
	if diff := cmp.Diff(expected, stored, cmpopts.EquateApproxTime(time.Second)); diff != "" {
		t.Fatalf("stored submission mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateContactSubmissionRejectsInvalidForm(t *testing.T) {
	service, db := newTestService(t, time.Now)

	_, err := service.CreateContactSubmission(context.Background(), ContactForm{Email: "bad"}, "ip", "ua")
	if err == nil {
		t.Fatal("expected validation error")
	}

	var count int64
	if err := db.Model(&ContactSubmission{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no rows, got %d", count)
	}
}

func TestRecordDownloadAppendsRowPerRequest(t *testing.T) {
	service, db := newTestService(t, time.Now)

	form := DownloadForm{Email: "x@y.com", ResourceID: "res_001", Subscribe: true}
	for range 2 {
		if _, err := service.RecordDownload(context.Background(), form, "ip", "ua"); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	var count int64
	if err := db.Model(&DownloadRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 download rows, got %d", count)
	}
}

func TestUpsertSubscriberIsIdempotentOnEmail(t *testing.T) {
	first := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	current := first
	service, db := newTestService(t, func() time.Time { return current })

	created, err := service.UpsertSubscriber(context.Background(), "a@b.com", "First Name", SourceNewsletter)
	if err != nil {
		t.Fatalf("initial upsert failed: %v", err)
	}
	if created.Status != SubscriberStatusActive {
		t.Fatalf("expected active status, got %q", created.Status)
	}

	current = first.Add(48 * time.Hour)
	updated, err := service.UpsertSubscriber(context.Background(), "a@b.com", "Second Name", SourceDownload)
	if err != nil {
		t.Fatalf("repeat upsert failed: %v", err)
	}

	var count int64
	if err := db.Model(&Subscriber{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one subscriber row, got %d", count)
	}

	if updated.Name != "Second Name" {
		t.Fatalf("expected latest name, got %q", updated.Name)
	}
	if updated.Source != SourceDownload {
		t.Fatalf("expected source to update, got %q", updated.Source)
	}
	if !updated.CreatedAt.Equal(first) {
		t.Fatalf("expected created_at untouched, got %v", updated.CreatedAt)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Fatalf("expected updated_at to advance past %v, got %v", updated.CreatedAt, updated.UpdatedAt)
	}
}

func TestUpsertSubscriberNormalizesEmailCase(t *testing.T) {
	service, db := newTestService(t, time.Now)

	if _, err := service.UpsertSubscriber(context.Background(), "User@Example.com", "", SourceNewsletter); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if _, err := service.UpsertSubscriber(context.Background(), "user@example.com", "", SourceNewsletter); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	var count int64
	if err := db.Model(&Subscriber{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one row for case variants, got %d", count)
	}
}

func TestUpsertSubscriberRejectsUnknownSource(t *testing.T) {
	service, _ := newTestService(t, time.Now)

	_, err := service.UpsertSubscriber(context.Background(), "a@b.com", "", SubscriberSource("referral"))
	if err == nil {
		t.Fatal("expected source validation error")
	}
}
