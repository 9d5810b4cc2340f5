package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents lifecycle of an order.
type OrderStatus string

const (
	// OrderStatusPending is the status every order starts in.
	OrderStatusPending OrderStatus = "PENDING"
)

// User represents a registered user.
// Users are immutable once created; there is no update operation.
type User struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EntityID returns the user's unique identifier.
func (u User) EntityID() string { return u.ID }

// Order represents a placed order.
// TotalAmount is derived from Quantity and UnitPrice at creation and is
// never settable independently.
type Order struct {
	ID          string
	OrderNumber string
	CustomerID  string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	Status      OrderStatus
}

// EntityID returns the order's unique identifier.
func (o Order) EntityID() string { return o.ID }
