package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a pre-checkout selection: at most one entry per bouquet.
type CartItem struct {
	BouquetID uuid.UUID `json:"bouquetId"`
	Quantity  int       `json:"quantity"`
}

// Cart is a session-scoped, durable pre-checkout state. It only stores
// references and quantities; prices always come from the live catalog.
type Cart struct {
	SessionID string     `json:"sessionId"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// PricedCartItem is a cart line resolved against the current catalog.
type PricedCartItem struct {
	BouquetID uuid.UUID `json:"bouquetId"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	Price     int       `json:"price"`
	Quantity  int       `json:"quantity"`
	Subtotal  int       `json:"subtotal"`
}

// CartView is the cart as served to clients. Items referencing bouquets that
// no longer exist are skipped here, contribute nothing to Total, but still
// count toward ItemCount until explicitly removed.
type CartView struct {
	SessionID string           `json:"sessionId"`
	Items     []PricedCartItem `json:"items"`
	Total     int              `json:"total"`
	ItemCount int              `json:"itemCount"`
}

// AddCartItemRequest puts one more of a bouquet into the cart.
type AddCartItemRequest struct {
	BouquetID uuid.UUID `json:"bouquetId" binding:"required"`
}

// SetCartQuantityRequest overwrites a line's quantity; zero or negative
// removes the line.
type SetCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}
