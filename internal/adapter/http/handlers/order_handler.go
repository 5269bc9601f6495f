package handlers

import (
	"errors"
	"log"
	request "maquininhas_mky/internal/adapter/http/dto/request"
	response "maquininhas_mky/internal/adapter/http/dto/response"
	"maquininhas_mky/internal/domain/entities"
	"maquininhas_mky/internal/usecase"
	"maquininhas_mky/pkg"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for machine orders. Every route resolves
// the session token into an actor identity first; authorization itself lives
// in the use case.

type OrderHandler struct {
	usecase  usecase.IOrderUseCase
	identity usecase.IIdentityUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase, identity usecase.IIdentityUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc, identity: identity}
}

// CreateOrder submits a new machine order.
//
// @Summary  Create an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    payload body request.CreateOrderRequest true "order"
// @Success  201 {object} response.OrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  401 {object} pkg.HTTPError
// @Router   /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	actor, ok := h.resolveActor(c)
	if !ok {
		return
	}

	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	cmd := usecase.CreateOrderCommand{
		CustomerName:       payload.CustomerName,
		CustomerPhone:      payload.CustomerPhone,
		CustomerEmail:      payload.CustomerEmail,
		LinkedAccountEmail: payload.PagSeguroEmail,
		Delivery:           payload.ResolveDelivery(),
		Category:           payload.ResolveCategory(),
		MachineName:        payload.MachineName,
		Quantity:           payload.Quantity,
		PaymentMethod:      payload.ResolvePaymentMethod(),
		InstallmentCount:   payload.Installments,
	}

	created, err := h.usecase.CreateOrder(c.Request.Context(), actor, cmd)
	if err != nil {
		log.Printf("[order][handler] create failed user_id=%s err=%v", actor.UserID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(created))
}

// ListOrders lists the actor's orders, or every order for admins.
//
// @Summary  List orders
// @Tags     orders
// @Produce  json
// @Security Bearer
// @Param    status query string false "status filter"
// @Param    search query string false "substring search (admin)"
// @Param    limit  query int    false "max rows, clamped to [1,200]"
// @Success  200 {array} response.OrderResponse
// @Router   /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	actor, ok := h.resolveActor(c)
	if !ok {
		return
	}

	filter := usecase.OrderListFilter{Search: c.Query("search")}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status := entities.OrderStatus(raw)
		if !status.Valid() {
			appErr := pkg.NewDomainErrorSimple("INVALID_STATUS", "Status inválido.", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		filter.Status = &status
	}
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_LIMIT", "Limite inválido.", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		filter.Limit = &limit
	}

	orders, err := h.usecase.ListOrders(c.Request.Context(), actor, filter)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// UpdateOrderStatus advances an order through the fulfillment lifecycle.
//
// @Summary  Update order status
// @Tags     orders
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    order_id path string true "order id"
// @Param    payload body request.UpdateOrderStatusRequest true "new status"
// @Success  200 {object} response.OrderResponse
// @Failure  401 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /orders/{order_id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	actor, ok := h.resolveActor(c)
	if !ok {
		return
	}

	orderID := c.Param("order_id")

	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateOrderStatus(c.Request.Context(), actor, orderID, payload.ResolveStatus(), payload.NotificationSent)
	if err != nil {
		log.Printf("[order][handler] status update failed order_id=%s user_id=%s err=%v", orderID, actor.UserID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(updated))
}

// resolveActor turns the bearer token into an identity. A missing token still
// resolves (to the unauthenticated identity); only infrastructure failures
// abort the request here.
func (h *OrderHandler) resolveActor(c *gin.Context) (entities.Identity, bool) {
	actor, err := h.identity.Resolve(c.Request.Context(), bearerToken(c))
	if err != nil {
		log.Printf("[order][handler] identity resolution failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.Identity{}, false
	}
	return actor, true
}

func bearerToken(c *gin.Context) string {
	raw := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(raw, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return strings.TrimSpace(raw)
}

func mapOrderError(err error) *pkg.AppError {
	var fieldErr *usecase.FieldError
	if errors.As(err, &fieldErr) {
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", fieldErr.Message, http.StatusBadRequest)
	}

	switch {
	case errors.Is(err, usecase.ErrOrderUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Não autorizado.", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrMachineNotFound):
		return pkg.NewDomainErrorSimple("MACHINE_NOT_FOUND", "Maquininha inválida.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status inválido.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Pedido não encontrado.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Transição de status não permitida.", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
