package routes

import (
	"log"
	_ "medibook/docs" // This will be auto-generated
	"medibook/internal/adapter/http/handlers"
	repository2 "medibook/internal/adapter/persistence/repository"
	"medibook/internal/infrastructure/database"
	"medibook/internal/infrastructure/payments"
	"medibook/internal/usecase"
	"medibook/internal/usecase/interfaces"
	"strconv"

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

	doctorRepo := repository2.NewDoctorDynamoRepository(ddb)
	appointmentRepo := repository2.NewAppointmentDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	reviewRepo := repository2.NewReviewDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	ppClient, err := payments.NewClientFromEnv(nil)
	if err != nil {
		log.Printf("PayPal client not configured: %v", err)
	}
	ppGateway, err := payments.NewPayPalGateway(ppClient)
	if err != nil {
		log.Printf("PayPal gateway not configured: %v", err)
	} else {
		paymentGateway = ppGateway
	}

	doctorUseCase := usecase.NewDoctorUseCase(doctorRepo)
	appointmentUseCase := usecase.NewAppointmentUseCase(appointmentRepo, doctorRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, appointmentRepo, paymentGateway)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, doctorRepo)

	doctorHandler := handlers.NewDoctorHandler(doctorUseCase)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	reviewHandler := handlers.NewReviewHandler(reviewUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, doctorHandler, appointmentHandler, paymentHandler, reviewHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
