package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/skorelabs/skore-api/internal/catalog"
)

type captureClient struct {
	sent    []Message
	failAll bool
	failTo  string
}

func (c *captureClient) Send(_ context.Context, message Message) error {
	if c.failAll {
		return errors.New("provider unavailable")
	}
	if c.failTo != "" && len(message.To) > 0 && message.To[0] == c.failTo {
		return errors.New("provider rejected recipient")
	}
	c.sent = append(c.sent, message)
	return nil
}

func newTestDispatcher(t *testing.T, client Client) *Dispatcher {
	t.Helper()
	dispatcher, err := NewDispatcher(DispatcherConfig{
		Client:     client,
		From:       "SKORE <hello@skore.test>",
		AdminEmail: "admin@skore.test",
		SiteURL:    "https://skore.test",
	})
	if err != nil {
		t.Fatalf("failed to build dispatcher: %v", err)
	}
	return dispatcher
}

func TestSendContactNotificationSendsAdminThenAck(t *testing.T) {
	client := &captureClient{}
	dispatcher := newTestDispatcher(t, client)

	err := dispatcher.SendContactNotification(context.Background(), ContactData{
		Name:    "Dana Smith",
		Email:   "dana@example.com",
		Company: "Example Co",
		Message: "Tell me more about the engagement survey.",
	})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}

	if len(client.sent) != 2 {
		t.Fatalf("expected admin notice plus acknowledgment, got %d messages", len(client.sent))
	}

	admin := client.sent[0]
	if admin.To[0] != "admin@skore.test" {
		t.Fatalf("expected admin recipient first, got %q", admin.To[0])
	}
	if admin.ReplyTo != "dana@example.com" {
		t.Fatalf("expected reply-to set to submitter, got %q", admin.ReplyTo)
	}
	if !strings.Contains(admin.HTML, "Example Co") {
		t.Fatal("expected admin notice to include the company")
	}

	ack := client.sent[1]
	if ack.To[0] != "dana@example.com" {
		t.Fatalf("expected acknowledgment to submitter, got %q", ack.To[0])
	}
}

func TestSendContactNotificationPropagatesAdminFailure(t *testing.T) {
	client := &captureClient{failTo: "admin@skore.test"}
	dispatcher := newTestDispatcher(t, client)

	err := dispatcher.SendContactNotification(context.Background(), ContactData{
		Name:    "Dana Smith",
		Email:   "dana@example.com",
		Message: "Tell me more about the engagement survey.",
	})
	if err == nil {
		t.Fatal("expected admin send failure to propagate")
	}
}

func TestSendContactNotificationSwallowsAckFailure(t *testing.T) {
	client := &captureClient{failTo: "dana@example.com"}
	dispatcher := newTestDispatcher(t, client)

	err := dispatcher.SendContactNotification(context.Background(), ContactData{
		Name:    "Dana Smith",
		Email:   "dana@example.com",
		Message: "Tell me more about the engagement survey.",
	})
	if err != nil {
		t.Fatalf("expected acknowledgment failure to be swallowed, got %v", err)
	}
	if len(client.sent) != 1 {
		t.Fatalf("expected only the admin notice to be delivered, got %d", len(client.sent))
	}
}

func TestSendWelcomeEmailFallsBackToGenericGreeting(t *testing.T) {
	client := &captureClient{}
	dispatcher := newTestDispatcher(t, client)

	if err := dispatcher.SendWelcomeEmail(context.Background(), "user@example.com", ""); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	if len(client.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(client.sent))
	}
	if !strings.Contains(client.sent[0].HTML, "Welcome aboard, there!") {
		t.Fatal("expected generic greeting for anonymous subscriber")
	}
}

func TestSendDownloadEmailEmbedsLinkAndIncludes(t *testing.T) {
	client := &captureClient{}
	dispatcher := newTestDispatcher(t, client)

	resource := catalog.Resource{
		ID:          "res_001",
		Slug:        "employee-engagement-survey",
		Title:       "Employee Engagement Survey Template",
		Type:        "Survey Template",
		Description: "Survey template.",
		Includes:    []string{"40 research-backed survey questions"},
	}

	err := dispatcher.SendDownloadEmail(context.Background(), "user@example.com", "Sam", resource, "https://skore.test/api/download?resourceId=res_001&token=abc")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}

	message := client.sent[0]
	if message.Subject != "Your Download: Employee Engagement Survey Template" {
		t.Fatalf("unexpected subject: %q", message.Subject)
	}
	if !strings.Contains(message.HTML, "token=abc") {
		t.Fatal("expected download link in HTML body")
	}
	if !strings.Contains(message.Text, "token=abc") {
		t.Fatal("expected download link in text body")
	}
	if !strings.Contains(message.HTML, "40 research-backed survey questions") {
		t.Fatal("expected includes list in HTML body")
	}
}

func TestSendWelcomeEmailPropagatesProviderFailure(t *testing.T) {
	dispatcher := newTestDispatcher(t, &captureClient{failAll: true})

	if err := dispatcher.SendWelcomeEmail(context.Background(), "user@example.com", "Sam"); err == nil {
		t.Fatal("expected provider failure to propagate")
	}
}
