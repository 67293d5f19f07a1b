package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func contextWithHeaders(headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/contact", http.NoBody)
	for key, value := range headers {
		c.Request.Header.Set(key, value)
	}
	return c
}

func TestClientIP(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"forwarded single hop", map[string]string{"X-Forwarded-For": "203.0.113.9"}, "203.0.113.9"},
		{"forwarded chain keeps first hop", map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}, "203.0.113.9"},
		{"real ip fallback", map[string]string{"X-Real-IP": "198.51.100.4"}, "198.51.100.4"},
		{"forwarded beats real ip", map[string]string{"X-Forwarded-For": "203.0.113.9", "X-Real-IP": "198.51.100.4"}, "203.0.113.9"},
		{"no headers", nil, "unknown"},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := clientIP(contextWithHeaders(testCase.headers)); got != testCase.want {
				t.Errorf("got %q, want %q", got, testCase.want)
			}
		})
	}
}

func TestRequestUserAgent(t *testing.T) {
	c := contextWithHeaders(map[string]string{"User-Agent": "test-agent/1.0"})
	if got := requestUserAgent(c); got != "test-agent/1.0" {
		t.Errorf("got %q", got)
	}
	if got := requestUserAgent(contextWithHeaders(nil)); got != "unknown" {
		t.Errorf("missing agent should read unknown, got %q", got)
	}
}
