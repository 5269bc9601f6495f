package response

import (
	"maquininhas_mky/internal/domain/entities"
	"time"
)

type DeliveryAddressResponse struct {
	Cep          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

type OrderResponse struct {
	OrderID   string    `json:"order_id"`
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`

	CustomerName   string `json:"customer_name"`
	CustomerPhone  string `json:"customer_phone"`
	CustomerEmail  string `json:"customer_email,omitempty"`
	PagSeguroEmail string `json:"pagseguro_email,omitempty"`

	Delivery DeliveryAddressResponse `json:"delivery"`

	MachineType string `json:"machine_type"`
	MachineName string `json:"machine_name"`
	Quantity    int    `json:"quantity"`

	PaymentMethod        string   `json:"payment_method"`
	TotalPrice           float64  `json:"total_price"`
	Installments         *int     `json:"installments,omitempty"`
	InstallmentUnitPrice *float64 `json:"installment_unit_price,omitempty"`

	Status           string `json:"status"`
	NotificationSent bool   `json:"notification_sent"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		OrderID:   o.ID,
		ID:        o.ID,
		OwnerID:   o.OwnerID,
		CreatedAt: o.CreatedAt,

		CustomerName:   o.CustomerName,
		CustomerPhone:  o.CustomerPhone,
		CustomerEmail:  o.CustomerEmail,
		PagSeguroEmail: o.LinkedAccountEmail,

		Delivery: DeliveryAddressResponse{
			Cep:          o.Delivery.Cep,
			Street:       o.Delivery.Street,
			Number:       o.Delivery.Number,
			Complement:   o.Delivery.Complement,
			Neighborhood: o.Delivery.Neighborhood,
			City:         o.Delivery.City,
			State:        o.Delivery.State,
		},

		MachineType: string(o.Category),
		MachineName: o.MachineName,
		Quantity:    o.Quantity,

		PaymentMethod:        string(o.PaymentMethod),
		TotalPrice:           o.TotalPrice,
		Installments:         o.InstallmentCount,
		InstallmentUnitPrice: o.InstallmentUnitPrice,

		Status:           string(o.Status),
		NotificationSent: o.NotificationSent,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
