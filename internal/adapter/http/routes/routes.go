package routes

import (
	"log"
	_ "maquininhas_mky/docs" // This will be auto-generated
	"maquininhas_mky/internal/adapter/http/handlers"
	repository2 "maquininhas_mky/internal/adapter/persistence/repository"
	"maquininhas_mky/internal/infrastructure/database"
	"maquininhas_mky/internal/infrastructure/mail"
	"maquininhas_mky/internal/usecase"
	"maquininhas_mky/internal/usecase/interfaces"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	sessionRepo := repository2.NewSessionDynamoRepository(ddb)
	resetCodeRepo := repository2.NewResetCodeDynamoRepository(ddb)
	catalogRepo := repository2.NewCatalogMemoryRepository()

	adminEmails := usecase.ParseAdminEmails(os.Getenv("ADMIN_EMAILS"))
	log.Printf("[identity] admin allow-list loaded entries=%d", len(adminEmails))

	identityUseCase := usecase.NewIdentityUseCase(sessionRepo, userRepo, adminEmails)
	pricingUseCase := usecase.NewPricingUseCase(catalogRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, catalogRepo, orderPolicyFromEnv())

	var delivery interfaces.ICodeDelivery
	sender, err := mail.NewResendSender(os.Getenv("RESEND_API_KEY"), os.Getenv("RESET_EMAIL_FROM"))
	if err != nil {
		log.Printf("Resend sender not configured: %v", err)
		delivery = mail.NewLogSender()
	} else {
		delivery = sender
	}
	resetUseCase := usecase.NewPasswordResetUseCase(userRepo, resetCodeRepo, delivery)

	quoteHandler := handlers.NewQuoteHandler(pricingUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase, identityUseCase)
	resetHandler := handlers.NewPasswordResetHandler(resetUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStoreRoutes(v1, quoteHandler, orderHandler, resetHandler)
}

// orderPolicyFromEnv resolves the two genuinely ambiguous lifecycle rules:
// who may mutate order status, and whether pending may jump to completed.
func orderPolicyFromEnv() usecase.OrderPolicy {
	return usecase.OrderPolicy{
		MutationAdminOnly:       strings.EqualFold(strings.TrimSpace(os.Getenv("ORDER_MUTATION_POLICY")), "admin"),
		AllowPendingToCompleted: isEnvTruthy("ORDER_ALLOW_PENDING_COMPLETED"),
	}
}

func isEnvTruthy(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
