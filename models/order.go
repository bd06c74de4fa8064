package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfillment status of an order. new is the sole initial
// state; any of the five values is a legal transition target from any state.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the recognized statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusConfirmed, OrderStatusInProgress,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a customer checkout. TotalPrice is computed once at creation from
// the snapshotted item prices and never recomputed against the live catalog.
type Order struct {
	ID              uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerName    string      `gorm:"type:varchar(255);not null" json:"customerName"`
	CustomerPhone   string      `gorm:"type:varchar(32);not null" json:"customerPhone"`
	CustomerEmail   string      `gorm:"type:varchar(255)" json:"customerEmail,omitempty"`
	DeliveryAddress string      `gorm:"type:text;not null" json:"deliveryAddress"`
	DeliveryDate    string      `gorm:"type:varchar(32);not null" json:"deliveryDate"`
	DeliveryTime    string      `gorm:"type:varchar(32);not null" json:"deliveryTime"`
	Comment         string      `gorm:"type:text" json:"comment,omitempty"`
	Status          OrderStatus `gorm:"type:varchar(20);not null;default:'new'" json:"status"`
	TotalPrice      int         `gorm:"not null" json:"totalPrice"`
	CreatedAt       time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem is one line of an order. BouquetID is a weak reference: the
// bouquet may be deleted later, in which case Bouquet resolves to nil while
// PriceAtOrder and Quantity stay intact.
type OrderItem struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index" json:"orderId"`
	BouquetID    uuid.UUID `gorm:"type:uuid;not null;index" json:"bouquetId"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	PriceAtOrder int       `gorm:"not null" json:"priceAtOrder"`
	Bouquet      *Bouquet  `gorm:"foreignKey:BouquetID;references:ID" json:"bouquet"`
}

// OrderItemRequest is one checkout line in a CreateOrderRequest.
type OrderItemRequest struct {
	BouquetID uuid.UUID `json:"bouquetId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest is the public checkout payload.
type CreateOrderRequest struct {
	CustomerName    string             `json:"customerName" binding:"required"`
	CustomerPhone   string             `json:"customerPhone" binding:"required"`
	CustomerEmail   string             `json:"customerEmail" binding:"omitempty,email"`
	DeliveryAddress string             `json:"deliveryAddress" binding:"required"`
	DeliveryDate    string             `json:"deliveryDate" binding:"required"`
	DeliveryTime    string             `json:"deliveryTime" binding:"required"`
	Comment         string             `json:"comment"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateStatusRequest is the admin payload for advancing an order.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
