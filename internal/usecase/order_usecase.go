package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"maquininhas_mky/internal/domain/entities"
	"maquininhas_mky/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderUnauthorized = errors.New("actor not allowed to use orders")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("status transition not permitted")
)

// FieldError is a validation failure tied to one input field. The message is
// surfaced verbatim to the caller.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func fieldErr(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

const (
	// adminScanWindow bounds how many recent orders the admin listing pulls
	// before filtering, mirroring the storefront's 200-row window.
	adminScanWindow = 200

	defaultListLimit = 50
	maxListLimit     = 200
)

// OrderPolicy resolves the transition-admissibility ambiguity: by default
// status mutation is owner-or-admin and pending cannot jump straight to
// completed. Both knobs are configurable because the business rule is
// genuinely ambiguous.
type OrderPolicy struct {
	MutationAdminOnly       bool
	AllowPendingToCompleted bool
}

// CreateOrderCommand carries the customer input for a new order. It carries
// no money fields: pricing is always re-derived from the catalog.
type CreateOrderCommand struct {
	CustomerName       string
	CustomerPhone      string
	CustomerEmail      string
	LinkedAccountEmail string

	Delivery entities.DeliveryAddress

	Category    entities.MachineCategory
	MachineName string
	Quantity    int

	PaymentMethod    entities.PaymentMethod
	InstallmentCount *int
}

// OrderListFilter narrows the order listing. Status and Search only take
// effect for admins over the full order set; non-admins always get their own
// orders.
type OrderListFilter struct {
	Status *entities.OrderStatus
	Search string
	Limit  *int
}

// IOrderUseCase is the access-controlled order service: who may create, list
// and mutate orders, plus the status state machine.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, actor entities.Identity, cmd CreateOrderCommand) (entities.Order, error)
	ListOrders(ctx context.Context, actor entities.Identity, filter OrderListFilter) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, actor entities.Identity, orderID string, status entities.OrderStatus, notificationSent *bool) (entities.Order, error)
}

type OrderUseCase struct {
	orders  interfaces.IOrderRepository
	catalog interfaces.ICatalogRepository
	policy  OrderPolicy
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, catalog interfaces.ICatalogRepository, policy OrderPolicy) *OrderUseCase {
	return &OrderUseCase{orders: orders, catalog: catalog, policy: policy}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, actor entities.Identity, cmd CreateOrderCommand) (entities.Order, error) {
	if !actor.CanUseOrders() {
		return entities.Order{}, ErrOrderUnauthorized
	}

	cmd = normalizeCreateOrder(cmd)
	if err := validateCreateOrder(cmd); err != nil {
		return entities.Order{}, err
	}

	machine, err := u.catalog.GetByName(ctx, cmd.Category, cmd.MachineName)
	if err != nil {
		return entities.Order{}, err
	}
	if machine.Name == "" {
		return entities.Order{}, ErrMachineNotFound
	}

	// Money fields come from the catalog, never from the client.
	quote := quoteMachine(machine, cmd.Quantity, cmd.PaymentMethod, cmd.InstallmentCount)

	order := entities.Order{
		ID:        uuid.NewString(),
		OwnerID:   actor.UserID,
		CreatedAt: time.Now().UTC(),

		CustomerName:       cmd.CustomerName,
		CustomerPhone:      cmd.CustomerPhone,
		CustomerEmail:      cmd.CustomerEmail,
		LinkedAccountEmail: cmd.LinkedAccountEmail,

		Delivery: cmd.Delivery,

		Category:    cmd.Category,
		MachineName: machine.Name,
		Quantity:    entities.ClampQuantity(cmd.Quantity),

		PaymentMethod:        cmd.PaymentMethod,
		TotalPrice:           quote.TotalPrice,
		InstallmentCount:     quote.Installments,
		InstallmentUnitPrice: quote.InstallmentUnitPrice,

		Status:           entities.OrderStatusPending,
		NotificationSent: false,
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		log.Printf("[order][usecase] create failed owner_id=%s machine=%s err=%v", actor.UserID, machine.Name, err)
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] create success order_id=%s owner_id=%s machine=%s total=%.2f", created.ID, created.OwnerID, created.MachineName, created.TotalPrice)
	return created, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context, actor entities.Identity, filter OrderListFilter) ([]entities.Order, error) {
	// Listing degrades gracefully: guests see an empty list, not an error.
	if !actor.CanUseOrders() {
		return []entities.Order{}, nil
	}

	limit := clampListLimit(filter.Limit)

	var (
		orders []entities.Order
		err    error
	)
	if actor.IsAdmin {
		orders, err = u.orders.ListRecent(ctx, adminScanWindow)
	} else {
		orders, err = u.orders.ListByOwnerID(ctx, actor.UserID)
	}
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		if search != "" && !strings.Contains(o.SearchHaystack(), search) {
			continue
		}
		filtered = append(filtered, o)
		if len(filtered) == limit {
			break
		}
	}
	return filtered, nil
}

func (u *OrderUseCase) UpdateOrderStatus(ctx context.Context, actor entities.Identity, orderID string, status entities.OrderStatus, notificationSent *bool) (entities.Order, error) {
	if !actor.CanUseOrders() {
		return entities.Order{}, ErrOrderUnauthorized
	}
	if !status.Valid() {
		return entities.Order{}, ErrInvalidStatus
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	if !u.mayMutate(actor, order) {
		return entities.Order{}, ErrOrderUnauthorized
	}

	if !u.transitionAllowed(order.Status, status) {
		log.Printf("[order][usecase] transition rejected order_id=%s from=%s to=%s", order.ID, order.Status, status)
		return entities.Order{}, ErrInvalidTransition
	}

	updated, err := u.orders.UpdateStatus(ctx, orderID, status, notificationSent)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] status updated order_id=%s from=%s to=%s by=%s", updated.ID, order.Status, updated.Status, actor.UserID)
	return updated, nil
}

func (u *OrderUseCase) mayMutate(actor entities.Identity, order entities.Order) bool {
	if actor.IsAdmin {
		return true
	}
	if u.policy.MutationAdminOnly {
		return false
	}
	return order.OwnerID == actor.UserID
}

func (u *OrderUseCase) transitionAllowed(from, to entities.OrderStatus) bool {
	if from.CanTransitionTo(to) {
		return true
	}
	return u.policy.AllowPendingToCompleted &&
		from == entities.OrderStatusPending &&
		to == entities.OrderStatusCompleted
}

func clampListLimit(limit *int) int {
	if limit == nil {
		return defaultListLimit
	}
	if *limit < 1 {
		return 1
	}
	if *limit > maxListLimit {
		return maxListLimit
	}
	return *limit
}

func normalizeCreateOrder(cmd CreateOrderCommand) CreateOrderCommand {
	cmd.CustomerName = strings.TrimSpace(cmd.CustomerName)
	cmd.CustomerPhone = strings.TrimSpace(cmd.CustomerPhone)
	cmd.CustomerEmail = strings.TrimSpace(cmd.CustomerEmail)
	cmd.LinkedAccountEmail = strings.TrimSpace(cmd.LinkedAccountEmail)
	cmd.MachineName = strings.TrimSpace(cmd.MachineName)

	cmd.Delivery.Cep = onlyDigits(cmd.Delivery.Cep)
	cmd.Delivery.Street = strings.TrimSpace(cmd.Delivery.Street)
	cmd.Delivery.Number = strings.TrimSpace(cmd.Delivery.Number)
	cmd.Delivery.Complement = strings.TrimSpace(cmd.Delivery.Complement)
	cmd.Delivery.Neighborhood = strings.TrimSpace(cmd.Delivery.Neighborhood)
	cmd.Delivery.City = strings.TrimSpace(cmd.Delivery.City)
	cmd.Delivery.State = strings.ToUpper(strings.TrimSpace(cmd.Delivery.State))
	return cmd
}

// validateCreateOrder checks every field before anything is persisted; a
// failing submission leaves no partial record. Messages match the storefront.
func validateCreateOrder(cmd CreateOrderCommand) error {
	if cmd.CustomerName == "" {
		return fieldErr("customer_name", "Informe o nome completo.")
	}
	if cmd.CustomerPhone == "" {
		return fieldErr("customer_phone", "Informe o telefone.")
	}
	if !cmd.Category.Valid() {
		return fieldErr("machine_type", "Tipo de maquininha inválido.")
	}
	if cmd.Category == entities.CategoryPagSeguro && cmd.LinkedAccountEmail == "" {
		return fieldErr("pagseguro_email", "Informe o e-mail PagSeguro.")
	}
	if len(cmd.Delivery.Cep) != 8 {
		return fieldErr("delivery_cep", "Informe um CEP válido (8 dígitos).")
	}
	if cmd.Delivery.Street == "" {
		return fieldErr("delivery_street", "Informe a rua.")
	}
	if cmd.Delivery.Number == "" {
		return fieldErr("delivery_number", "Informe o número.")
	}
	if cmd.Delivery.Neighborhood == "" {
		return fieldErr("delivery_neighborhood", "Informe o bairro.")
	}
	if cmd.Delivery.City == "" {
		return fieldErr("delivery_city", "Informe a cidade.")
	}
	if cmd.Delivery.State == "" {
		return fieldErr("delivery_state", "Informe o estado (UF).")
	}
	if cmd.MachineName == "" {
		return fieldErr("machine_name", "Selecione uma maquininha.")
	}
	if cmd.Quantity < entities.MinQuantity || cmd.Quantity > entities.MaxQuantity {
		return fieldErr("quantity", "A quantidade deve estar entre 1 e 1000.")
	}
	if !cmd.PaymentMethod.Valid() {
		return fieldErr("payment_method", "Forma de pagamento inválida.")
	}
	if cmd.PaymentMethod == entities.PaymentMethodInstallment {
		if cmd.InstallmentCount == nil || *cmd.InstallmentCount < entities.MinInstallments || *cmd.InstallmentCount > entities.MaxInstallments {
			return fieldErr("installments", "Selecione as parcelas (2x a 12x).")
		}
	}
	return nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
