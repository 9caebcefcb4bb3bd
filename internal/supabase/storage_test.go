package supabase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	client, err := NewStorageClient("https://example.supabase.co", "service-key", "orders")
	require.NoError(t, err)

	url := client.PublicURL("documents/AP-MB2XK9QF/2025-06-01T12-00-00-000Z.pdf")
	assert.Equal(t,
		"https://example.supabase.co/storage/v1/object/public/orders/documents/AP-MB2XK9QF/2025-06-01T12-00-00-000Z.pdf",
		url)
}

func TestPublicURLTrimsTrailingSlash(t *testing.T) {
	client, err := NewStorageClient("https://example.supabase.co/", "service-key", "orders")
	require.NoError(t, err)

	url := client.PublicURL("receipts/AP-MB2XK9QF/r.jpg")
	assert.Equal(t,
		"https://example.supabase.co/storage/v1/object/public/orders/receipts/AP-MB2XK9QF/r.jpg",
		url)
}
