package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                   {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                    {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                    {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                   {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                   {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any) {}

func newLimitedRouter(perMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := New(nopLogger{}, perMin)
	r.POST("/process", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func hit(r *gin.Engine) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/process", nil))
	return w.Code
}

func TestRateLimit_BurstThenReject(t *testing.T) {
	r := newLimitedRouter(2) // burst of 2

	if code := hit(r); code != http.StatusOK {
		t.Fatalf("first request = %d, want 200", code)
	}
	if code := hit(r); code != http.StatusOK {
		t.Fatalf("second request = %d, want 200", code)
	}
	if code := hit(r); code != http.StatusTooManyRequests {
		t.Fatalf("third request = %d, want 429", code)
	}
}

func TestRateLimit_DisabledWhenZero(t *testing.T) {
	r := newLimitedRouter(0)

	for i := 0; i < 50; i++ {
		if code := hit(r); code != http.StatusOK {
			t.Fatalf("request %d = %d, want 200 (limiting disabled)", i, code)
		}
	}
}
