package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/skorelabs/skore-api/internal/catalog"
	"go.uber.org/zap"
)

var (
	errMissingClient = errors.New("email: client is required")
	errMissingFrom   = errors.New("email: from address is required")
	errMissingAdmin  = errors.New("email: admin address is required")
)

// DispatcherConfig describes the dependencies of the notification dispatcher.
type DispatcherConfig struct {
	Client     Client
	From       string
	AdminEmail string
	SiteURL    string
	Logger     *zap.Logger
}

// Dispatcher composes the site's transactional emails and hands them to the
// provider client.
type Dispatcher struct {
	client Client
	from   string
	admin  string
	site   string
	logger *zap.Logger
}

// NewDispatcher validates the configuration and constructs a Dispatcher.
func NewDispatcher(cfg DispatcherConfig) (*Dispatcher, error) {
	if cfg.Client == nil {
		return nil, errMissingClient
	}
	if cfg.From == "" {
		return nil, errMissingFrom
	}
	if cfg.AdminEmail == "" {
		return nil, errMissingAdmin
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		client: cfg.Client,
		from:   cfg.From,
		admin:  cfg.AdminEmail,
		site:   cfg.SiteURL,
		logger: logger,
	}, nil
}

// ContactData carries the submitter's fields into the contact notices.
type ContactData struct {
	Name    string
	Email   string
	Company string
	Message string
}

// SendContactNotification sends the admin notice and the submitter's
// acknowledgment. The admin notice is the primary send: its failure is
// returned to the caller. The acknowledgment is logged only; the admin must
// know about every contact, the submitter's copy is a nice-to-have.
func (d *Dispatcher) SendContactNotification(ctx context.Context, data ContactData) error {
	templateData := contactTemplateData{
		Name:    data.Name,
		Email:   data.Email,
		Company: data.Company,
		Message: data.Message,
		SiteURL: d.site,
	}

	adminHTML, err := renderContactAdminHTML(templateData)
	if err != nil {
		return fmt.Errorf("email: render admin notice: %w", err)
	}
	err = d.client.Send(ctx, Message{
		From:    d.from,
		To:      []string{d.admin},
		ReplyTo: data.Email,
		Subject: fmt.Sprintf("New contact from %s", data.Name),
		HTML:    adminHTML,
		Tags:    []Tag{{Name: "category", Value: "contact"}},
	})
	if err != nil {
		return fmt.Errorf("email: contact notification: %w", err)
	}

	ackHTML, err := renderContactAckHTML(templateData)
	if err != nil {
		d.logger.Warn("contact acknowledgment render failed", zap.Error(err))
		return nil
	}
	err = d.client.Send(ctx, Message{
		From:    d.from,
		To:      []string{data.Email},
		Subject: fmt.Sprintf("Thanks for reaching out, %s!", data.Name),
		HTML:    ackHTML,
	})
	if err != nil {
		d.logger.Warn("contact acknowledgment send failed",
			zap.String("to", data.Email), zap.Error(err))
	}

	return nil
}

// SendWelcomeEmail greets a new newsletter subscriber.
func (d *Dispatcher) SendWelcomeEmail(ctx context.Context, to, name string) error {
	html, err := renderWelcomeHTML(name, d.site)
	if err != nil {
		return fmt.Errorf("email: render welcome: %w", err)
	}
	err = d.client.Send(ctx, Message{
		From:    d.from,
		To:      []string{to},
		Subject: "Welcome to SKORE!",
		HTML:    html,
		Tags:    []Tag{{Name: "category", Value: "welcome"}},
	})
	if err != nil {
		return fmt.Errorf("email: welcome: %w", err)
	}
	return nil
}

// SendDownloadEmail delivers the download link for a requested resource.
func (d *Dispatcher) SendDownloadEmail(ctx context.Context, to, name string, resource catalog.Resource, downloadURL string) error {
	html, err := renderDownloadHTML(name, resource, downloadURL, d.site)
	if err != nil {
		return fmt.Errorf("email: render download: %w", err)
	}
	err = d.client.Send(ctx, Message{
		From:    d.from,
		To:      []string{to},
		Subject: fmt.Sprintf("Your Download: %s", resource.Title),
		HTML:    html,
		Text:    renderDownloadText(name, resource, downloadURL, d.site),
		Tags:    []Tag{{Name: "category", Value: "download"}},
	})
	if err != nil {
		return fmt.Errorf("email: download: %w", err)
	}
	return nil
}
