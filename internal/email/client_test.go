package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResendClientPostsAuthorizedJSON(t *testing.T) {
	var received Message
	var authorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewResendClient("test-key")
	client.endpoint = server.URL

	err := client.Send(context.Background(), Message{
		From:    "SKORE <hello@skore.test>",
		To:      []string{"user@example.com"},
		Subject: "Hello",
		HTML:    "<p>Hi</p>",
	})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}

	if authorization != "Bearer test-key" {
		t.Fatalf("expected bearer auth, got %q", authorization)
	}
	if received.Subject != "Hello" {
		t.Fatalf("unexpected payload subject: %q", received.Subject)
	}
}

func TestResendClientSurfacesProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer server.Close()

	client := NewResendClient("test-key")
	client.endpoint = server.URL

	err := client.Send(context.Background(), Message{To: []string{"user@example.com"}})
	if err == nil {
		t.Fatal("expected provider rejection to surface")
	}
	if got := err.Error(); got != "email: provider rejected send (status 422): invalid from address" {
		t.Fatalf("unexpected error message: %q", got)
	}
}

func TestResendClientRequiresAPIKey(t *testing.T) {
	client := NewResendClient("")
	if err := client.Send(context.Background(), Message{}); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
