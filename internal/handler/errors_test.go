package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestErrorHandler(t *testing.T) {
	tests := map[string]struct {
		method     string
		err        error
		expectCode int
		expectBody string
		expectLog  bool
	}{
		"not found": {
			method:     http.MethodGet,
			err:        echo.ErrNotFound,
			expectCode: http.StatusNotFound,
			expectBody: `{"message":"Not Found"}`,
		},
		"method not allowed": {
			method:     http.MethodGet,
			err:        echo.ErrMethodNotAllowed,
			expectCode: http.StatusMethodNotAllowed,
			expectBody: `{"message":"Method Not Allowed"}`,
		},
		"plain error": {
			method:     http.MethodPost,
			err:        errors.New("dial tcp: connection refused"),
			expectCode: http.StatusInternalServerError,
			expectBody: `{"message":"` + MessageInternalError + `"}`,
			expectLog:  true,
		},
		"http error 5xx hides detail": {
			method:     http.MethodGet,
			err:        echo.NewHTTPError(http.StatusBadGateway, "upstream exploded"),
			expectCode: http.StatusBadGateway,
			expectBody: `{"message":"` + MessageInternalError + `"}`,
			expectLog:  true,
		},
		"head has no body": {
			method:     http.MethodHead,
			err:        echo.ErrNotFound,
			expectCode: http.StatusNotFound,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			log, hook := test.NewNullLogger()
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(tt.method, "/missing", nil), rec)

			ErrorHandler(log)(tt.err, c)

			if rec.Code != tt.expectCode {
				t.Fatalf("expected %d, got %d", tt.expectCode, rec.Code)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tt.expectBody {
				t.Fatalf("unexpected body: %s", got)
			}

			logged := false
			for _, entry := range hook.AllEntries() {
				if entry.Level == logrus.ErrorLevel {
					logged = true
				}
			}
			if logged != tt.expectLog {
				t.Fatalf("expected logged=%v, got %v", tt.expectLog, logged)
			}
		})
	}
}

func TestErrorHandler_CommittedResponse(t *testing.T) {
	log, _ := test.NewNullLogger()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	if err := c.String(http.StatusOK, "done"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ErrorHandler(log)(errors.New("late failure"), c)

	if rec.Code != http.StatusOK || rec.Body.String() != "done" {
		t.Fatalf("committed response must not be rewritten")
	}
}
