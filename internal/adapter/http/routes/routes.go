package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "agroexport/docs" // This will be auto-generated
	"agroexport/internal/adapter/http/handlers"
	repository2 "agroexport/internal/adapter/persistence/repository"
	"agroexport/internal/domain/entities"
	"agroexport/internal/infrastructure/database"
	"agroexport/internal/infrastructure/reports"
	"agroexport/internal/usecase"
	"agroexport/internal/usecase/interfaces"

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
	estimateRepo := newEstimateRepository()
	productRepo := repository2.NewProductMemoryRepository(entities.DefaultProducts()...)
	exporter := reports.NewExcelReportExporter()

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, productRepo, exporter)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo)
	analyticsUseCase := usecase.NewAnalyticsUseCase(estimateRepo)
	forecastUseCase := usecase.NewForecastUseCase(estimateRepo)
	freightUseCase := usecase.NewFreightUseCase()

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase)
	forecastHandler := handlers.NewForecastHandler(forecastUseCase)
	freightHandler := handlers.NewFreightHandler(freightUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimationRoutes(v1, estimateHandler, catalogHandler, analyticsHandler, forecastHandler, freightHandler)
}

// newEstimateRepository picks the estimate store backend. The default
// in-memory store matches the one-user, process-lifetime semantics of
// the original; ESTIMATE_STORE=dynamodb switches to the durable backend.
func newEstimateRepository() interfaces.IEstimateRepository {
	if strings.EqualFold(os.Getenv("ESTIMATE_STORE"), "dynamodb") {
		log.Printf("[routes] using dynamodb estimate store")
		return repository2.NewEstimateDynamoRepository(database.ConnectDynamoDB())
	}
	log.Printf("[routes] using in-memory estimate store")
	return repository2.NewEstimateMemoryRepository()
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
