package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skorelabs/skore-api/internal/leads"
)

const unknownValue = "unknown"

// bindJSON decodes the request body into form. A wrong-typed field inside
// otherwise valid JSON is a schema violation the caller can fix, so it comes
// back as a field error rather than a decode error; only an unreadable or
// syntactically broken body returns err.
func bindJSON(c *gin.Context, form any) ([]leads.FieldError, error) {
	err := c.ShouldBindJSON(form)
	if err == nil {
		return nil, nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []leads.FieldError{{
			Field:   field,
			Message: fmt.Sprintf("Expected %s, received %s", typeErr.Type, typeErr.Value),
		}}, nil
	}

	return nil, err
}

// clientIP reads the proxy headers the site's edge sets. The first hop of
// X-Forwarded-For wins, then X-Real-IP.
func clientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if trimmed := strings.TrimSpace(first); trimmed != "" {
			return trimmed
		}
	}
	if realIP := strings.TrimSpace(c.GetHeader("X-Real-IP")); realIP != "" {
		return realIP
	}
	return unknownValue
}

func requestUserAgent(c *gin.Context) string {
	if agent := c.GetHeader("User-Agent"); agent != "" {
		return agent
	}
	return unknownValue
}
