package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/skorelabs/skore-api/internal/auth"
	"github.com/skorelabs/skore-api/internal/catalog"
	"github.com/skorelabs/skore-api/internal/email"
	"github.com/skorelabs/skore-api/internal/leads"
	"github.com/skorelabs/skore-api/internal/ratelimit"
	"go.uber.org/zap"
)

var (
	errMissingLeadStore        = errors.New("lead store dependency required")
	errMissingCatalog          = errors.New("resource catalog dependency required")
	errMissingDispatcher       = errors.New("notification dispatcher dependency required")
	errMissingContactLimiter   = errors.New("contact rate limiter dependency required")
	errMissingSubscribeLimiter = errors.New("subscribe rate limiter dependency required")
	errMissingDownloadLimiter  = errors.New("download rate limiter dependency required")
)

const errInternal = "Internal server error"

// LeadStore persists form submissions. Failures are soft: orchestrators log
// them and keep going.
type LeadStore interface {
	CreateContactSubmission(ctx context.Context, form leads.ContactForm, ipAddress, userAgent string) (leads.ContactSubmission, error)
	RecordDownload(ctx context.Context, form leads.DownloadForm, ipAddress, userAgent string) (leads.DownloadRecord, error)
	UpsertSubscriber(ctx context.Context, email, name string, source leads.SubscriberSource) (leads.Subscriber, error)
}

// NotificationDispatcher sends the site's transactional emails.
type NotificationDispatcher interface {
	SendContactNotification(ctx context.Context, data email.ContactData) error
	SendWelcomeEmail(ctx context.Context, to, name string) error
	SendDownloadEmail(ctx context.Context, to, name string, resource catalog.Resource, downloadURL string) error
}

// Dependencies wires the endpoint orchestrators to their collaborators.
// TokenIssuer is optional: when nil, download links are unsigned and the
// file GET is open.
type Dependencies struct {
	LeadStore        LeadStore
	Catalog          *catalog.Catalog
	Dispatcher       NotificationDispatcher
	ContactLimiter   ratelimit.Limiter
	SubscribeLimiter ratelimit.Limiter
	DownloadLimiter  ratelimit.Limiter
	TokenIssuer      *auth.DownloadTokenIssuer
	DownloadDir      string
	SiteURL          string
	Logger           *zap.Logger
}

// NewHTTPHandler validates the dependency graph and builds the router.
func NewHTTPHandler(deps Dependencies) (http.Handler, error) {
	if deps.LeadStore == nil {
		return nil, errMissingLeadStore
	}
	if deps.Catalog == nil {
		return nil, errMissingCatalog
	}
	if deps.Dispatcher == nil {
		return nil, errMissingDispatcher
	}
	if deps.ContactLimiter == nil {
		return nil, errMissingContactLimiter
	}
	if deps.SubscribeLimiter == nil {
		return nil, errMissingSubscribeLimiter
	}
	if deps.DownloadLimiter == nil {
		return nil, errMissingDownloadLimiter
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("request panicked", zap.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": errInternal})
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	handler := &httpHandler{
		leadStore:        deps.LeadStore,
		catalog:          deps.Catalog,
		dispatcher:       deps.Dispatcher,
		contactLimiter:   deps.ContactLimiter,
		subscribeLimiter: deps.SubscribeLimiter,
		downloadLimiter:  deps.DownloadLimiter,
		tokenIssuer:      deps.TokenIssuer,
		downloadDir:      deps.DownloadDir,
		siteURL:          deps.SiteURL,
		logger:           logger,
	}

	api := router.Group("/api")
	api.POST("/contact", handler.handleContact)
	api.POST("/subscribe", handler.handleSubscribe)
	api.POST("/download", handler.handleDownloadRequest)
	api.GET("/download", handler.handleDownloadFile)
	api.GET("/resources", handler.handleListResources)
	api.GET("/resources/:idOrSlug", handler.handleGetResource)

	router.GET("/healthz", handler.handleHealth)

	return router, nil
}

type httpHandler struct {
	leadStore        LeadStore
	catalog          *catalog.Catalog
	dispatcher       NotificationDispatcher
	contactLimiter   ratelimit.Limiter
	subscribeLimiter ratelimit.Limiter
	downloadLimiter  ratelimit.Limiter
	tokenIssuer      *auth.DownloadTokenIssuer
	downloadDir      string
	siteURL          string
	logger           *zap.Logger
}

func (h *httpHandler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleListResources serves the library, or only the featured entries the
// home page highlights when ?featured=true.
func (h *httpHandler) handleListResources(c *gin.Context) {
	resources := h.catalog.All()
	if c.Query("featured") == "true" {
		resources = h.catalog.Featured()
	}
	c.JSON(http.StatusOK, gin.H{"resources": resources})
}

func (h *httpHandler) handleGetResource(c *gin.Context) {
	resource, ok := h.catalog.Lookup(c.Param("idOrSlug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}
	c.JSON(http.StatusOK, resource)
}
