package request

import (
	"strings"

	"maquininhas_mky/internal/domain/entities"
)

// CreateOrderRequest is the order submission payload.
//
// total_price is accepted for compatibility with the storefront but is
// advisory only: the service re-derives every money field from the catalog.
type CreateOrderRequest struct {
	CustomerName   string `json:"customer_name" binding:"required"`
	CustomerPhone  string `json:"customer_phone" binding:"required"`
	CustomerEmail  string `json:"customer_email"`
	PagSeguroEmail string `json:"pagseguro_email"`

	DeliveryCep          string `json:"delivery_cep" binding:"required"`
	DeliveryStreet       string `json:"delivery_street"`
	DeliveryNumber       string `json:"delivery_number"`
	DeliveryComplement   string `json:"delivery_complement"`
	DeliveryNeighborhood string `json:"delivery_neighborhood"`
	DeliveryCity         string `json:"delivery_city"`
	DeliveryState        string `json:"delivery_state"`

	MachineType string `json:"machine_type" binding:"required"`
	MachineName string `json:"machine_name" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`

	PaymentMethod string `json:"payment_method" binding:"required"`
	Installments  *int   `json:"installments"`

	TotalPrice *float64 `json:"total_price"`
}

func (r CreateOrderRequest) ResolveCategory() entities.MachineCategory {
	return entities.MachineCategory(strings.TrimSpace(r.MachineType))
}

func (r CreateOrderRequest) ResolvePaymentMethod() entities.PaymentMethod {
	switch strings.TrimSpace(r.PaymentMethod) {
	case string(entities.PaymentMethodCash), "avista":
		return entities.PaymentMethodCash
	case string(entities.PaymentMethodInstallment), "parcelado":
		return entities.PaymentMethodInstallment
	}
	return entities.PaymentMethod(strings.TrimSpace(r.PaymentMethod))
}

func (r CreateOrderRequest) ResolveDelivery() entities.DeliveryAddress {
	return entities.DeliveryAddress{
		Cep:          r.DeliveryCep,
		Street:       r.DeliveryStreet,
		Number:       r.DeliveryNumber,
		Complement:   r.DeliveryComplement,
		Neighborhood: r.DeliveryNeighborhood,
		City:         r.DeliveryCity,
		State:        r.DeliveryState,
	}
}

// UpdateOrderStatusRequest patches the lifecycle fields of an order.
type UpdateOrderStatusRequest struct {
	Status           string `json:"status" binding:"required"`
	NotificationSent *bool  `json:"notification_sent"`
}

func (r UpdateOrderStatusRequest) ResolveStatus() entities.OrderStatus {
	return entities.OrderStatus(strings.TrimSpace(r.Status))
}
