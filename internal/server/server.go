package server

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kerbside/kerbside-api/internal/auth"
	"github.com/kerbside/kerbside-api/internal/handlers"
	"github.com/kerbside/kerbside-api/internal/services"
)

// Services holds the engine services shared by the HTTP surface and the
// background scheduler
type Services struct {
	Vat        *services.VatService
	CT         *services.CorporationTaxService
	NI         *services.NationalInsuranceService
	Deadlines  *services.DeadlineService
	Compliance *services.ComplianceService
}

// NewServices wires up the full service set
func NewServices() *Services {
	return &Services{
		Vat:        services.NewVatService(),
		CT:         services.NewCorporationTaxService(),
		NI:         services.NewNationalInsuranceService(),
		Deadlines:  services.NewDeadlineService(),
		Compliance: services.NewComplianceService(),
	}
}

// NewRouter builds the gin engine with middleware and all routes wired
func NewRouter(svc *Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(configureCORS())

	healthHandler := handlers.NewHealthHandler()
	taxHandler := handlers.NewTaxHandler(svc.Vat, svc.CT, svc.NI)
	deadlineHandler := handlers.NewDeadlineHandler(svc.Deadlines)
	complianceHandler := handlers.NewComplianceHandler(svc.Compliance)
	validationHandler := handlers.NewValidationHandler()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		// Validation endpoints are public; everything else needs a token.
		v1.POST("/validation/vat-number", validationHandler.ValidateVatNumber)
		v1.POST("/validation/utr", validationHandler.ValidateUtr)

		protected := v1.Group("/")
		protected.Use(auth.RequireRole("admin", "accountant"))
		{
			tax := protected.Group("/tax")
			{
				tax.POST("/vat/calculate", taxHandler.CalculateVat)
				tax.POST("/vat/return", taxHandler.BuildVatReturn)
				tax.POST("/corporation-tax/calculate", taxHandler.CalculateCorporationTax)
				tax.POST("/national-insurance/calculate", taxHandler.CalculateNationalInsurance)
			}

			deadlines := protected.Group("/deadlines")
			{
				deadlines.GET("", deadlineHandler.ListDeadlines)
				deadlines.GET("/:id", deadlineHandler.GetDeadline)
				deadlines.POST("/generate/:year", deadlineHandler.GenerateYear)
				deadlines.POST("/advance", deadlineHandler.AdvanceDeadlines)
				deadlines.POST("/:id/complete", deadlineHandler.CompleteDeadline)
				deadlines.POST("/:id/cancel", deadlineHandler.CancelDeadline)
			}

			protected.POST("/compliance/checks", complianceHandler.RunChecks)
		}
	}

	return router
}

// configureCORS builds the CORS middleware from environment variables,
// falling back to permissive local defaults
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"
	corsConfig.MaxAge = 12 * time.Hour

	return cors.New(corsConfig)
}
