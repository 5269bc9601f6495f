package routes

import (
	"maquininhas_mky/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathMachines = "/machines"
	PathOrders   = "/orders"
	PathReset    = "/password-reset"
)

func addStoreRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, orderHandler *handlers.OrderHandler, resetHandler *handlers.PasswordResetHandler) {
	rg.POST(PathQuotes, quoteHandler.CreateQuote)
	rg.GET(PathMachines, quoteHandler.ListMachines)

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.PATCH("/:order_id/status", orderHandler.UpdateOrderStatus)
	}

	reset := rg.Group(PathReset)
	{
		reset.POST("/request", resetHandler.RequestReset)
		reset.POST("/verify", resetHandler.VerifyReset)
	}
}
