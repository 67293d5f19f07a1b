package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skorelabs/skore-api/internal/catalog"
	"github.com/skorelabs/skore-api/internal/email"
	"github.com/skorelabs/skore-api/internal/leads"
)

type subscriberCall struct {
	email  string
	name   string
	source leads.SubscriberSource
}

type stubLeadStore struct {
	contactErr    error
	downloadErr   error
	subscriberErr error

	contacts    []leads.ContactForm
	downloads   []leads.DownloadForm
	subscribers []subscriberCall
}

func (s *stubLeadStore) CreateContactSubmission(_ context.Context, form leads.ContactForm, _, _ string) (leads.ContactSubmission, error) {
	if s.contactErr != nil {
		return leads.ContactSubmission{}, s.contactErr
	}
	s.contacts = append(s.contacts, form)
	return leads.ContactSubmission{ID: "sub-1", Email: form.Email}, nil
}

func (s *stubLeadStore) RecordDownload(_ context.Context, form leads.DownloadForm, _, _ string) (leads.DownloadRecord, error) {
	if s.downloadErr != nil {
		return leads.DownloadRecord{}, s.downloadErr
	}
	s.downloads = append(s.downloads, form)
	return leads.DownloadRecord{ID: "dl-1", Email: form.Email}, nil
}

func (s *stubLeadStore) UpsertSubscriber(_ context.Context, emailAddress, name string, source leads.SubscriberSource) (leads.Subscriber, error) {
	if s.subscriberErr != nil {
		return leads.Subscriber{}, s.subscriberErr
	}
	s.subscribers = append(s.subscribers, subscriberCall{email: emailAddress, name: name, source: source})
	return leads.Subscriber{Email: emailAddress, Name: name, Source: source}, nil
}

type downloadSend struct {
	to         string
	resourceID string
	url        string
}

type stubDispatcher struct {
	contactErr  error
	welcomeErr  error
	downloadErr error

	contacts  []email.ContactData
	welcomes  []string
	downloads []downloadSend
}

func (s *stubDispatcher) SendContactNotification(_ context.Context, data email.ContactData) error {
	if s.contactErr != nil {
		return s.contactErr
	}
	s.contacts = append(s.contacts, data)
	return nil
}

func (s *stubDispatcher) SendWelcomeEmail(_ context.Context, to, _ string) error {
	if s.welcomeErr != nil {
		return s.welcomeErr
	}
	s.welcomes = append(s.welcomes, to)
	return nil
}

func (s *stubDispatcher) SendDownloadEmail(_ context.Context, to, _ string, resource catalog.Resource, downloadURL string) error {
	if s.downloadErr != nil {
		return s.downloadErr
	}
	s.downloads = append(s.downloads, downloadSend{to: to, resourceID: resource.ID, url: downloadURL})
	return nil
}

type allowAllLimiter struct{}

func (allowAllLimiter) Allow(string) bool { return true }

type denyAllLimiter struct{}

func (denyAllLimiter) Allow(string) bool { return false }

func defaultTestDependencies(store *stubLeadStore, dispatcher *stubDispatcher) Dependencies {
	return Dependencies{
		LeadStore:        store,
		Catalog:          catalog.Default(),
		Dispatcher:       dispatcher,
		ContactLimiter:   allowAllLimiter{},
		SubscribeLimiter: allowAllLimiter{},
		DownloadLimiter:  allowAllLimiter{},
		SiteURL:          "https://skore.test",
	}
}

func newTestHandler(t *testing.T, deps Dependencies) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	handler, err := NewHTTPHandler(deps)
	if err != nil {
		t.Fatalf("failed to build handler: %v", err)
	}
	return handler
}

func performJSON(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, path, http.NoBody)
	} else {
		request = httptest.NewRequest(method, path, strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response %q: %v", recorder.Body.String(), err)
	}
	return payload
}
