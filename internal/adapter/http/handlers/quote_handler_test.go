package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"maquininhas_mky/internal/adapter/http/handlers/mocks"
	"maquininhas_mky/internal/domain/entities"
	"maquininhas_mky/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid machine type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"machine_type":"banco","machine_name":"Smart","payment_method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("legacy payment method alias", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().Quote(gomock.Any(), entities.CategoryPagSeguro, "Smart", 1, entities.PaymentMethodCash, nil).
			Return(entities.Quote{UnitPrice: 196.08, TotalPrice: 196.08}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"machine_type":"pagseguro","machine_name":"Smart","payment_method":"avista","quantity":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("fractional quantity is truncated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().Quote(gomock.Any(), entities.CategoryPagSeguro, "Smart", 3, entities.PaymentMethodCash, nil).
			Return(entities.Quote{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"machine_type":"pagseguro","machine_name":"Smart","payment_method":"cash","quantity":3.9}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("machine not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().Quote(gomock.Any(), entities.CategoryPagSeguro, "Ghost", 1, entities.PaymentMethodCash, nil).
			Return(entities.Quote{}, usecase.ErrMachineNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"machine_type":"pagseguro","machine_name":"Ghost","payment_method":"cash","quantity":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success with installment breakdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().Quote(gomock.Any(), entities.CategoryPagSeguro, "Smart", 2, entities.PaymentMethodInstallment, intp(12)).
			Return(entities.Quote{
				UnitPrice:            196.08,
				TotalPrice:           392.16,
				Installments:         intp(12),
				InstallmentUnitPrice: floatp(16.34),
				InstallmentTotal:     floatp(32.68),
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"machine_type":"pagseguro","machine_name":"Smart","payment_method":"parcelado","quantity":2,"installments":12}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total_price"] != 392.16 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["installment_unit_price"] != 16.34 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_ListMachines(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing machine type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/machines", h.ListMachines)

		req := httptest.NewRequest(http.MethodGet, "/v1/machines", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/machines", h.ListMachines)

		uc.EXPECT().ListMachines(gomock.Any(), entities.CategoryPagSeguro).Return([]entities.Machine{
			{Name: "Smart", Category: entities.CategoryPagSeguro, Pricing: entities.PricingFlat, FlatUnitPrice: 196.08},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/machines?machine_type=pagseguro", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["name"] != "Smart" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/machines", h.ListMachines)

		uc.EXPECT().ListMachines(gomock.Any(), entities.CategoryPagSeguro).Return(nil, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/v1/machines?machine_type=pagseguro", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMapPricingError(t *testing.T) {
	if got := mapPricingError(usecase.ErrInvalidCategory); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPricingError(usecase.ErrInvalidPaymentMethod); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPricingError(usecase.ErrMachineNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPricingError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
