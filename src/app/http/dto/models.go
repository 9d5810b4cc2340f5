// Package dto defines the JSON request bodies accepted by the API.
// Field names match the frontend contract (camelCase).
package dto

import "github.com/shopspring/decimal"

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateOrderRequest is the body of POST /api/orders.
// UnitPrice accepts a JSON number or numeric string and is carried as an
// exact decimal end to end.
type CreateOrderRequest struct {
	CustomerID  string          `json:"customerId"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}
