package handlers

import (
	"errors"
	"log"
	request "maquininhas_mky/internal/adapter/http/dto/request"
	response "maquininhas_mky/internal/adapter/http/dto/response"
	"maquininhas_mky/internal/usecase"
	"maquininhas_mky/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidResetPayload = pkg.NewDomainErrorSimple("INVALID_RESET_INPUT", "Invalid reset payload", http.StatusBadRequest)

// PasswordResetHandler handles the two-step reset flow.

type PasswordResetHandler struct {
	usecase usecase.IPasswordResetUseCase
}

func NewPasswordResetHandler(uc usecase.IPasswordResetUseCase) *PasswordResetHandler {
	return &PasswordResetHandler{usecase: uc}
}

// RequestReset issues and e-mails a one-time reset code.
//
// The response is 202 whether or not the e-mail is registered, so the
// endpoint cannot be used to probe accounts.
//
// @Summary  Request a password reset code
// @Tags     password-reset
// @Accept   json
// @Produce  json
// @Param    payload body request.PasswordResetRequest true "email"
// @Success  202 {object} response.PasswordResetResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /password-reset/request [post]
func (h *PasswordResetHandler) RequestReset(c *gin.Context) {
	var payload request.PasswordResetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidResetPayload.HTTPStatus, errInvalidResetPayload.ToHTTPError())
		return
	}

	if err := h.usecase.RequestReset(c.Request.Context(), payload.Email); err != nil {
		log.Printf("[reset][handler] request failed err=%v", err)
		appErr := mapResetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, response.PasswordResetResponse{Accepted: true})
}

// VerifyReset checks the code and replaces the credential.
//
// @Summary  Verify a reset code and set a new password
// @Tags     password-reset
// @Accept   json
// @Produce  json
// @Param    payload body request.PasswordResetVerifyRequest true "verification"
// @Success  200 {object} response.PasswordResetResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  429 {object} pkg.HTTPError
// @Router   /password-reset/verify [post]
func (h *PasswordResetHandler) VerifyReset(c *gin.Context) {
	var payload request.PasswordResetVerifyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidResetPayload.HTTPStatus, errInvalidResetPayload.ToHTTPError())
		return
	}

	if err := h.usecase.VerifyReset(c.Request.Context(), payload.Email, payload.Code, payload.NewPassword); err != nil {
		log.Printf("[reset][handler] verify failed err=%v", err)
		appErr := mapResetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PasswordResetResponse{Accepted: true})
}

func mapResetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidResetEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "E-mail inválido.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidResetCode):
		return pkg.NewDomainErrorSimple("INVALID_RESET_CODE", "Código inválido ou expirado.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTooManyResetAttempts):
		return pkg.NewDomainErrorSimple("TOO_MANY_ATTEMPTS", "Muitas tentativas. Tente novamente mais tarde.", http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainErrorSimple("WEAK_PASSWORD", "A senha deve ter ao menos 8 caracteres.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCodeDeliveryFailed):
		return pkg.NewDomainErrorSimple("DELIVERY_FAILED", "Falha ao enviar o e-mail de redefinição.", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
