package handlers

import (
	"errors"
	request "maquininhas_mky/internal/adapter/http/dto/request"
	response "maquininhas_mky/internal/adapter/http/dto/response"
	"maquininhas_mky/internal/usecase"
	"maquininhas_mky/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler exposes the catalog and the pricing engine. Quotes are public
// and side-effect free; the storefront calls them on every keystroke.

type QuoteHandler struct {
	usecase usecase.IPricingUseCase
}

func NewQuoteHandler(uc usecase.IPricingUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote computes the price breakdown for a machine selection.
//
// @Summary  Quote a machine selection
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    payload body request.QuoteRequest true "selection"
// @Success  200 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	category, ok := payload.ResolveCategory()
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_MACHINE_TYPE", "Tipo de maquininha inválido.", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	method, ok := payload.ResolvePaymentMethod()
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Forma de pagamento inválida.", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, err := h.usecase.Quote(c.Request.Context(), category, payload.MachineName, payload.ResolveQuantity(), method, payload.Installments)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ListMachines returns the catalog for one category.
//
// @Summary  List catalog machines
// @Tags     quotes
// @Produce  json
// @Param    machine_type query string true "pagseguro or subadquirente"
// @Success  200 {array} response.MachineResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /machines [get]
func (h *QuoteHandler) ListMachines(c *gin.Context) {
	var payload request.QuoteRequest
	payload.MachineType = c.Query("machine_type")

	category, ok := payload.ResolveCategory()
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_MACHINE_TYPE", "Tipo de maquininha inválido.", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	machines, err := h.usecase.ListMachines(c.Request.Context(), category)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMachines(machines))
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCategory):
		return pkg.NewDomainErrorSimple("INVALID_MACHINE_TYPE", "Tipo de maquininha inválido.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Forma de pagamento inválida.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMachineNotFound):
		return pkg.NewDomainErrorSimple("MACHINE_NOT_FOUND", "Maquininha inválida.", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
