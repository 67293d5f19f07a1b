package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skorelabs/skore-api/internal/email"
	"github.com/skorelabs/skore-api/internal/leads"
	"go.uber.org/zap"
)

const (
	contactSuccessMessage  = "Message sent! We'll get back to you soon."
	contactEmailWarning    = "Message received, but notification email failed to send."
	contactRateLimitedBody = "Too many contact requests. Please try again later."
)

// handleContact runs the contact pipeline: validate, rate-limit by ip_email,
// persist best-effort, notify, respond.
func (h *httpHandler) handleContact(c *gin.Context) {
	var form leads.ContactForm
	violations, err := bindJSON(c, &form)
	if err != nil {
		h.logger.Error("contact request body unreadable", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
		return
	}
	if len(violations) == 0 {
		violations = form.Validate()
	}
	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data", "details": violations})
		return
	}

	form.Email = leads.NormalizeEmail(form.Email)
	ip := clientIP(c)
	if !h.contactLimiter.Allow(ip + "_" + form.Email) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": contactRateLimitedBody})
		return
	}

	if _, err := h.leadStore.CreateContactSubmission(c.Request.Context(), form, ip, requestUserAgent(c)); err != nil {
		h.logger.Error("contact submission not persisted", zap.String("email", form.Email), zap.Error(err))
	}

	warning := h.runNotifications(c.Request.Context(), []notification{
		{
			op:      "contact_notification",
			loud:    true,
			warning: contactEmailWarning,
			send: func(ctx context.Context) error {
				return h.dispatcher.SendContactNotification(ctx, email.ContactData{
					Name:    form.Name,
					Email:   form.Email,
					Company: form.Company,
					Message: form.Message,
				})
			},
		},
	})
	if warning != "" {
		c.JSON(http.StatusOK, gin.H{"success": true, "warning": warning})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": contactSuccessMessage})
}
