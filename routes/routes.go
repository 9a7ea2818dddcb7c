package routes

import (
	"database/sql"

	"carbontrack-api/handlers"
	"carbontrack-api/services"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up public authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, db *sql.DB, emissions *services.EmissionsService, targets *services.TargetService) {
	authHandler := &handlers.AuthHandler{DB: db, Emissions: emissions, Targets: targets}

	rg.POST("/auth/signup", authHandler.Signup)
	rg.POST("/auth/login", authHandler.Login)
	rg.POST("/auth/logout", authHandler.Logout)
}

// SetupEmissionRoutes sets up the protected calculator, summary, and clear
// routes.
func SetupEmissionRoutes(rg *gin.RouterGroup, emissions *services.EmissionsService, targets *services.TargetService) {
	h := &handlers.EmissionsHandler{Emissions: emissions, Targets: targets}

	rg.POST("/emissions/transportation", h.CalculateTransportation)
	rg.POST("/emissions/waste", h.CalculateWaste)
	rg.POST("/emissions/energy", h.CalculateEnergy)
	rg.GET("/emissions/summary", h.GetSummary)
	rg.GET("/emissions/history", h.GetHistory)
	rg.DELETE("/emissions", h.ClearEmissions)
}

// SetupTargetRoutes sets up the protected monthly target routes.
func SetupTargetRoutes(rg *gin.RouterGroup, emissions *services.EmissionsService, targets *services.TargetService) {
	h := &handlers.TargetHandler{Emissions: emissions, Targets: targets}

	rg.GET("/target", h.GetTarget)
	rg.PUT("/target", h.SetTarget)
}

// SetupUserRoutes sets up protected user routes.
func SetupUserRoutes(rg *gin.RouterGroup, db *sql.DB, emissions *services.EmissionsService, targets *services.TargetService) {
	userHandler := &handlers.UserHandler{DB: db, Emissions: emissions, Targets: targets}

	rg.GET("/user/profile", userHandler.GetProfile)
	rg.PUT("/user/profile", userHandler.UpdateProfile)
	rg.POST("/user/password", userHandler.ChangePassword)
	rg.POST("/user/2fa/setup", userHandler.SetupTOTP)
	rg.POST("/user/2fa/verify", userHandler.VerifyTOTP)
	rg.POST("/user/2fa/disable", userHandler.DisableTOTP)
	rg.DELETE("/user/account", userHandler.DeleteAccount)
}

// SetupLearnRoutes sets up the public educational content routes.
func SetupLearnRoutes(rg *gin.RouterGroup) {
	rg.GET("/learn/factors", handlers.GetFactors)
	rg.GET("/learn/tips", handlers.GetTips)
}

// SetupAdminRoutes sets up the secret-gated operations routes.
func SetupAdminRoutes(rg *gin.RouterGroup, db *sql.DB) {
	adminHandler := &handlers.AdminHandler{DB: db}

	rg.GET("/admin/stats", adminHandler.GetStats)
	rg.POST("/admin/dedupe", adminHandler.RunDedupe)
}
