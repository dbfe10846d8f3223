package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"polisure/cmd/fx/account_fx"
	"polisure/cmd/fx/admin_fx"
	"polisure/cmd/fx/audit_fx"
	"polisure/cmd/fx/catalog_fx"
	"polisure/cmd/fx/claim_fx"
	"polisure/cmd/fx/controllers_fx"
	"polisure/cmd/fx/db_fx"
	"polisure/cmd/fx/logger_fx"
	"polisure/cmd/fx/mail_fx"
	"polisure/cmd/fx/policy_fx"
	"polisure/cmd/fx/stats_fx"
	"polisure/cmd/fx/storage_fx"
	"polisure/internal/api/controllers"
	"polisure/internal/models/db_models"
	"polisure/pkg/middleware"
	"polisure/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		storage_fx.Module,
		mail_fx.Module,
		audit_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		policy_fx.Module,
		claim_fx.Module,
		stats_fx.Module,
		admin_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tokens *utils.TokenManager,
	authController *controllers.AuthController,
	catalogController *controllers.CatalogController,
	customerController *controllers.CustomerController,
	agentController *controllers.AgentController,
	adminController *controllers.AdminController,
) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tokens, authController, catalogController, customerController, agentController, adminController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	tokens *utils.TokenManager,
	authController *controllers.AuthController,
	catalogController *controllers.CatalogController,
	customerController *controllers.CustomerController,
	agentController *controllers.AgentController,
	adminController *controllers.AdminController,
) {
	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/signup", authController.Signup)
	auth.POST("/login", authController.Login)

	// The public catalog is browsable without an account.
	v1.GET("/policies", catalogController.ListPolicies)
	v1.GET("/policies/:id", catalogController.GetPolicy)

	authed := v1.Group("")
	authed.Use(middleware.JWTAuthMiddleware(tokens))
	authed.GET("/auth/me", authController.Me)
	authed.PUT("/auth/me", authController.UpdateMe)

	adminOnly := middleware.RequireRole(db_models.RoleAdmin)
	authed.GET("/auth/users", adminOnly, authController.ListUsers)
	authed.GET("/auth/users/:id", adminOnly, authController.GetUser)

	customer := authed.Group("/customer")
	customer.Use(middleware.RequireRole(db_models.RoleCustomer))
	customer.GET("/agent-assignment", customerController.MyAgent)
	customer.POST("/policies/:id/purchase", customerController.PurchasePolicy)
	customer.GET("/my-policies", customerController.MyPolicies)
	customer.PUT("/my-policies/:id/cancel", customerController.CancelPolicy)
	customer.POST("/payments", customerController.RecordPayment)
	customer.GET("/payments", customerController.MyPayments)
	customer.POST("/claims", customerController.SubmitClaim)
	customer.POST("/claims/without-policy", customerController.SubmitClaimWithoutPolicy)
	customer.GET("/claims", customerController.MyClaims)
	customer.GET("/claims/:id", customerController.GetClaim)
	customer.GET("/claims-stats", customerController.Stats)

	agent := authed.Group("/agent")
	agent.Use(middleware.RequireRole(db_models.RoleAgent))
	agent.GET("/claims", agentController.ListClaims)
	agent.GET("/claims/pending", agentController.ListPendingClaims)
	agent.GET("/claims/:id", agentController.GetClaim)
	agent.PUT("/claims/:id/review", agentController.ReviewClaim)
	agent.GET("/customers", agentController.ListCustomers)
	agent.GET("/customers/:id/policies", agentController.CustomerPolicies)
	agent.GET("/customers/:id/claims", agentController.CustomerClaims)
	agent.GET("/stats", agentController.Stats)
	agent.GET("/profile", agentController.Profile)
	agent.PUT("/profile", agentController.UpdateProfile)

	admin := authed.Group("/admin")
	admin.Use(adminOnly)
	admin.POST("/policies", adminController.CreatePolicy)
	admin.PUT("/policies/:id", adminController.UpdatePolicy)
	admin.DELETE("/policies/:id", adminController.DeletePolicy)
	admin.POST("/agents", adminController.CreateAgent)
	admin.GET("/agents", adminController.ListAgents)
	admin.PUT("/users/:id/assign-agent", adminController.AssignAgent)
	admin.GET("/claims", adminController.ListClaims)
	admin.GET("/claims/:id", adminController.GetClaim)
	admin.PUT("/claims/:id/status", adminController.ReviewClaim)
	admin.GET("/summary", adminController.Summary)
	admin.GET("/audit", adminController.AuditLogs)
}
