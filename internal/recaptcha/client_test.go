package recaptcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySuccess(t *testing.T) {
	var gotSecret, gotResponse string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotSecret = r.PostFormValue("secret")
		gotResponse = r.PostFormValue("response")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := NewClient("test-secret").WithEndpoint(server.URL)
	ok, err := client.Verify(context.Background(), "the-token")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "test-secret", gotSecret)
	assert.Equal(t, "the-token", gotResponse)
}

func TestVerifyRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	}))
	defer server.Close()

	client := NewClient("test-secret").WithEndpoint(server.URL)
	ok, err := client.Verify(context.Background(), "bad-token")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyMissingSecret(t *testing.T) {
	client := NewClient("")
	ok, err := client.Verify(context.Background(), "any-token")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyEndpointFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient("test-secret").WithEndpoint(server.URL)
	ok, err := client.Verify(context.Background(), "the-token")

	assert.Error(t, err)
	assert.False(t, ok)
}
