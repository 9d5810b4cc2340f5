package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"storefront/src/core/codegen"
	"storefront/src/core/domain"
	"storefront/src/core/format"
	"storefront/src/core/ports"
	"storefront/src/core/validate"
)

// OrderProjection is the display-ready representation of an order.
// Quantity and the price fields are formatted strings; status passes
// through verbatim.
type OrderProjection struct {
	ID          string `json:"id"`
	OrderNumber string `json:"orderNumber"`
	CustomerID  string `json:"customerId"`
	ProductName string `json:"productName"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	TotalAmount string `json:"totalAmount"`
	CreatedAt   string `json:"createdAt"`
	Status      string `json:"status"`
}

// OrderService handles order placement and lookups.
type OrderService struct {
	resourceService[domain.Order, OrderProjection]
	generator    *codegen.Generator
	formatter    *format.Formatter
	numberPrefix string
	codeLength   int
	log          *slog.Logger
}

// NewOrderService creates an OrderService. Order numbers are built as
// numberPrefix followed by a codeLength-character alphanumeric code.
func NewOrderService(store ports.RecordStore[domain.Order], generator *codegen.Generator, formatter *format.Formatter, numberPrefix string, codeLength int, log *slog.Logger) *OrderService {
	s := &OrderService{
		generator:    generator,
		formatter:    formatter,
		numberPrefix: numberPrefix,
		codeLength:   codeLength,
		log:          log,
	}
	s.resourceService = resourceService[domain.Order, OrderProjection]{
		store:   store,
		project: s.projectOrder,
		log:     log,
	}
	return s
}

// Create validates the input, places a new order, and returns its
// projection. The total amount is quantity x unit price computed with
// exact decimal arithmetic. The customer id is not cross-checked against
// the user store.
func (s *OrderService) Create(ctx context.Context, customerID, productName string, quantity int64, unitPrice decimal.Decimal) (*OrderProjection, error) {
	if !validate.NotEmpty(customerID) {
		return nil, domain.NewValidationError("customerId", "Customer ID is required")
	}
	if !validate.NotEmpty(productName) {
		return nil, domain.NewValidationError("productName", "Product name is required")
	}
	if quantity <= 0 {
		return nil, domain.NewValidationError("quantity", "Quantity must be greater than 0")
	}
	if !unitPrice.IsPositive() {
		return nil, domain.NewValidationError("unitPrice", "Unit price must be greater than 0")
	}

	code, err := s.generator.AlphanumericCode(s.codeLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate order number: %w", err)
	}

	order := domain.Order{
		ID:          s.generator.NewID(),
		OrderNumber: s.numberPrefix + code,
		CustomerID:  customerID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalAmount: unitPrice.Mul(decimal.NewFromInt(quantity)),
		CreatedAt:   time.Now(),
		Status:      domain.OrderStatusPending,
	}

	if err := s.store.Append(ctx, order); err != nil {
		return nil, err
	}
	s.log.Info("order created", "order_id", order.ID, "order_number", order.OrderNumber)

	projection := s.projectOrder(order)
	return &projection, nil
}

func (s *OrderService) projectOrder(o domain.Order) OrderProjection {
	return OrderProjection{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		CustomerID:  o.CustomerID,
		ProductName: o.ProductName,
		Quantity:    s.formatter.FormatInt(o.Quantity),
		UnitPrice:   s.formatter.FormatCurrency(o.UnitPrice),
		TotalAmount: s.formatter.FormatCurrency(o.TotalAmount),
		CreatedAt:   s.formatter.FormatTime(&o.CreatedAt),
		Status:      string(o.Status),
	}
}
