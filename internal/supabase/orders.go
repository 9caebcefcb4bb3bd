package supabase

import (
	"context"
	"fmt"

	"github.com/supabase-community/supabase-go"

	"anonprint-backend/internal/models"
)

const ordersTable = "orders"

// OrderStore persists order rows through the Supabase PostgREST API.
// Orders are append-only: a single insert per submission, no update or
// delete path.
type OrderStore struct {
	client *supabase.Client
}

func NewOrderStore(supabaseURL, serviceKey string) (*OrderStore, error) {
	client, err := supabase.NewClient(supabaseURL, serviceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize supabase client: %w", err)
	}
	return &OrderStore{client: client}, nil
}

// Insert writes exactly one order row with its initial pending status.
func (s *OrderStore) Insert(_ context.Context, order *models.Order) error {
	_, _, err := s.client.From(ordersTable).
		Insert(order, false, "", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to insert order %s: %w", order.OrderID, err)
	}
	return nil
}
