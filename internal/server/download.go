package server

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skorelabs/skore-api/internal/catalog"
	"github.com/skorelabs/skore-api/internal/leads"
	"go.uber.org/zap"
)

const (
	downloadSuccessMessage  = "Check your email for the download link!"
	downloadWelcomeWarning  = "Download recorded, but the welcome email failed to send."
	downloadRateLimitedBody = "Too many download requests. Please try again later."
	resourceNotFoundBody    = "Resource not found"
)

// handleDownloadRequest runs the download pipeline: validate, rate-limit by
// email, resolve the resource, append the download record best-effort,
// optionally subscribe, then mail the download link.
func (h *httpHandler) handleDownloadRequest(c *gin.Context) {
	var form leads.DownloadForm
	violations, err := bindJSON(c, &form)
	if err != nil {
		h.logger.Error("download request body unreadable", zap.Error(err))
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
	if !h.downloadLimiter.Allow(form.Email) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": downloadRateLimitedBody})
		return
	}

	resource, ok := h.catalog.Lookup(form.ResourceID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": resourceNotFoundBody})
		return
	}

	if _, err := h.leadStore.RecordDownload(c.Request.Context(), form, clientIP(c), requestUserAgent(c)); err != nil {
		h.logger.Error("download record not persisted",
			zap.String("email", form.Email),
			zap.String("resource_id", resource.ID),
			zap.Error(err))
	}

	var notifications []notification
	if form.Subscribe {
		if _, err := h.leadStore.UpsertSubscriber(c.Request.Context(), form.Email, form.DisplayName(), leads.SourceDownload); err != nil {
			h.logger.Error("subscriber not persisted", zap.String("email", form.Email), zap.Error(err))
		}
		notifications = append(notifications, notification{
			op:      "welcome_email",
			loud:    true,
			warning: downloadWelcomeWarning,
			send: func(ctx context.Context) error {
				return h.dispatcher.SendWelcomeEmail(ctx, form.Email, form.DisplayName())
			},
		})
	}

	downloadURL := h.downloadURL(form.Email, resource)
	notifications = append(notifications, notification{
		op:   "download_email",
		loud: false,
		send: func(ctx context.Context) error {
			return h.dispatcher.SendDownloadEmail(ctx, form.Email, form.DisplayName(), resource, downloadURL)
		},
	})

	response := gin.H{
		"success": true,
		"download": gin.H{
			"resourceTitle": resource.Title,
			"downloadUrl":   downloadURL,
		},
	}
	if warning := h.runNotifications(c.Request.Context(), notifications); warning != "" {
		response["warning"] = warning
	} else {
		response["message"] = downloadSuccessMessage
	}

	c.JSON(http.StatusOK, response)
}

// downloadURL builds the link mailed to the requester. With a token issuer
// configured the link is signed and scoped to the resource; without one it
// points straight at the public file path.
func (h *httpHandler) downloadURL(emailAddress string, resource catalog.Resource) string {
	if h.tokenIssuer == nil {
		return h.siteURL + resource.FilePath
	}

	token, err := h.tokenIssuer.Issue(emailAddress, resource.ID)
	if err != nil {
		h.logger.Error("download token issue failed",
			zap.String("resource_id", resource.ID), zap.Error(err))
		return h.siteURL + resource.FilePath
	}

	query := url.Values{}
	query.Set("resourceId", resource.ID)
	query.Set("token", token)
	return h.siteURL + "/api/download?" + query.Encode()
}

// handleDownloadFile streams the PDF behind a download link. The resource
// must exist before any file access is attempted; token checks apply only
// when an issuer is configured.
func (h *httpHandler) handleDownloadFile(c *gin.Context) {
	resourceID := strings.TrimSpace(c.Query("resourceId"))
	if resourceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Resource ID required"})
		return
	}

	resource, ok := h.catalog.Lookup(resourceID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": resourceNotFoundBody})
		return
	}

	if h.tokenIssuer != nil {
		if _, err := h.tokenIssuer.Validate(c.Query("token"), resource.ID); err != nil {
			h.logger.Warn("download token rejected",
				zap.String("resource_id", resource.ID), zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired download token"})
			return
		}
	}

	relative := strings.TrimPrefix(resource.FilePath, "/downloads/")
	path := filepath.Join(h.downloadDir, filepath.FromSlash(relative))
	if _, err := os.Stat(path); err != nil {
		h.logger.Error("resource file missing",
			zap.String("resource_id", resource.ID),
			zap.String("path", path),
			zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found on server"})
		return
	}

	c.Header("Cache-Control", "no-store")
	c.FileAttachment(path, resource.Slug+".pdf")
}
