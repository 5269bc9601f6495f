package entities

import (
	"strings"
	"time"
)

// OrderStatus represents the fulfillment lifecycle of a machine order.
//
// pending -> sent | cancelled
// sent    -> completed | cancelled
// completed and cancelled are terminal.
//
// Orders are never deleted; cancellation is a status, not a deletion.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusSent      OrderStatus = "sent"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusSent, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether next is reachable from s. Re-applying the
// current status is allowed and observationally a no-op.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case OrderStatusPending:
		return next == OrderStatusSent || next == OrderStatusCancelled
	case OrderStatusSent:
		return next == OrderStatusCompleted || next == OrderStatusCancelled
	}
	return false
}

// PaymentMethod is how the customer pays for the machines.
type PaymentMethod string

const (
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodInstallment PaymentMethod = "installment"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentMethodCash || p == PaymentMethodInstallment
}

// DeliveryAddress is the structured shipping address collected with the order.
// Cep holds exactly 8 digits once validated.
type DeliveryAddress struct {
	Cep          string
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
}

// Order is a customer request for payment machines.
//
// TotalPrice and InstallmentUnitPrice are re-derived server-side from the
// catalog at creation time; client-submitted totals are advisory only.
// After creation only Status and NotificationSent may change.
type Order struct {
	ID        string
	OwnerID   string
	CreatedAt time.Time

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	// LinkedAccountEmail is the PagSeguro account e-mail, required for
	// direct-acquirer orders.
	LinkedAccountEmail string

	Delivery DeliveryAddress

	Category    MachineCategory
	MachineName string
	Quantity    int

	PaymentMethod        PaymentMethod
	TotalPrice           float64
	InstallmentCount     *int
	InstallmentUnitPrice *float64

	Status           OrderStatus
	NotificationSent bool
}

// SearchHaystack concatenates the fields matched by the admin substring
// search, lower-cased.
func (o Order) SearchHaystack() string {
	parts := []string{
		o.CustomerName,
		o.CustomerPhone,
		o.CustomerEmail,
		o.MachineName,
		string(o.Category),
	}
	return strings.ToLower(strings.TrimSpace(strings.Join(parts, " ")))
}
