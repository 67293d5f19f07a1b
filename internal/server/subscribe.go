package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skorelabs/skore-api/internal/leads"
	"go.uber.org/zap"
)

const (
	subscribeSuccessMessage  = "Successfully subscribed! Check your email."
	subscribeEmailWarning    = "Subscribed! But confirmation email failed to send."
	subscribeRateLimitedBody = "Too many subscription requests. Please try again later."
)

// handleSubscribe runs the newsletter pipeline: validate, rate-limit by
// email, upsert the subscriber best-effort, send the welcome email, respond.
func (h *httpHandler) handleSubscribe(c *gin.Context) {
	var form leads.SubscribeForm
	violations, err := bindJSON(c, &form)
	if err != nil {
		h.logger.Error("subscribe request body unreadable", zap.Error(err))
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
	if !h.subscribeLimiter.Allow(form.Email) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": subscribeRateLimitedBody})
		return
	}

	if _, err := h.leadStore.UpsertSubscriber(c.Request.Context(), form.Email, form.Name, leads.SourceNewsletter); err != nil {
		h.logger.Error("subscriber not persisted", zap.String("email", form.Email), zap.Error(err))
	}

	warning := h.runNotifications(c.Request.Context(), []notification{
		{
			op:      "welcome_email",
			loud:    true,
			warning: subscribeEmailWarning,
			send: func(ctx context.Context) error {
				return h.dispatcher.SendWelcomeEmail(ctx, form.Email, form.Name)
			},
		},
	})
	if warning != "" {
		c.JSON(http.StatusOK, gin.H{"success": true, "warning": warning})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": subscribeSuccessMessage})
}
