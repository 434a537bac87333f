package routes

import (
	"log"
	_ "managefarms/docs" // This will be auto-generated
	"managefarms/internal/adapter/http/handlers"
	repository2 "managefarms/internal/adapter/persistence/repository"
	"managefarms/internal/infrastructure/database"
	"managefarms/internal/infrastructure/events"
	"managefarms/internal/infrastructure/notifier"
	"managefarms/internal/usecase"
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

	workOrderRepo := repository2.NewWorkOrderDynamoRepository(ddb)
	plotRepo := repository2.NewPlotDynamoRepository(ddb)
	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)

	bus := events.NewMemoryBus()
	alerts := notifier.NewLogNotifier()

	lookupUseCase := usecase.NewCatalogLookupUseCase(catalogRepo)
	plotUseCase := usecase.NewPlotUseCase(plotRepo, workOrderRepo, bus)
	sessionUseCase := usecase.NewFormSessionUseCase(workOrderRepo, bus, alerts)
	workOrderUseCase := usecase.NewWorkOrderUseCase(workOrderRepo, plotUseCase, lookupUseCase, sessionUseCase)

	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase, sessionUseCase)
	plotHandler := handlers.NewPlotHandler(plotUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkOrderRoutes(v1, workOrderHandler, plotHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
