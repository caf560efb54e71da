package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHTTPClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		w.Header().Set("X-Test", "yes")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	headers := http.Header{}
	headers.Set("Authorization", "Bearer token")

	code, body, respHeaders, err := NewHTTPClient().Get(context.Background(), srv.URL, headers)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []byte(`[]`), body)
	assert.Equal(t, "yes", respHeaders.Get("X-Test"))
}

func TestHTTPClient_GetCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, _, err := NewHTTPClient().Get(ctx, srv.URL, nil)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockHTTPClientI(ctrl)
	mock.EXPECT().Get(gomock.Any(), "http://platform/api", gomock.Any()).Return(http.StatusTeapot, nil, http.Header{}, nil)

	client := NewHTTPClient()
	client.SetClient(mock)

	code, _, _, err := client.Get(context.Background(), "http://platform/api", nil)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, code)
}
