package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService("secret")
	valid, _ := jwtService.GenerateJWT("op-7", time.Now().Add(time.Hour))

	var seen string
	handler := Middleware(jwtService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = OperatorID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedID   string
	}{
		{name: "no header", header: "", expectedCode: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", expectedCode: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer nope", expectedCode: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + valid, expectedCode: http.StatusOK, expectedID: "op-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = ""
			r := httptest.NewRequest(http.MethodGet, "/api/finance/dashboard", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedID, seen)
		})
	}
}

func TestSharedSecret(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	tests := []struct {
		name         string
		secret       string
		header       string
		expectedCode int
	}{
		{name: "disabled", secret: "", header: "", expectedCode: http.StatusAccepted},
		{name: "missing header", secret: "s3cret", header: "", expectedCode: http.StatusUnauthorized},
		{name: "wrong secret", secret: "s3cret", header: "guess", expectedCode: http.StatusUnauthorized},
		{name: "matching secret", secret: "s3cret", header: "s3cret", expectedCode: http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/notify", nil)
			if tt.header != "" {
				r.Header.Set(NotifyTokenHeader, tt.header)
			}
			w := httptest.NewRecorder()

			SharedSecret(NotifyTokenHeader, tt.secret)(ok).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
