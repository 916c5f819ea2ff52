package server

import (
	"github.com/gin-gonic/gin"

	"github.com/campushub/campus-hub/internal/config"
	"github.com/campushub/campus-hub/internal/handlers"
	"github.com/campushub/campus-hub/internal/middleware"
	"github.com/campushub/campus-hub/internal/models"
	"github.com/campushub/campus-hub/internal/observability"
	"github.com/campushub/campus-hub/pkg/auth"
)

func APIEndpoints(
	r *gin.Engine,
	cfg *config.Config,
	jwtMgr *auth.JWTManager,
	blacklist auth.Blacklist,
	authH *handlers.AuthHandler,
	marketH *handlers.MarketplaceHandler,
	timetableH *handlers.TimetableHandler,
	wsH *handlers.WebSocketHandler,
) {
	r.Use(observability.HTTPMiddleware())

	r.GET("/metrics", gin.WrapH(observability.MetricsHandler()))
	r.Static("/uploads", cfg.UploadDir)

	// Auth endpoints
	authGrp := r.Group("/auth")
	{
		authGrp.POST("/register", authH.Register)
		authGrp.POST("/login", authH.Login)
		authGrp.POST("/logout", authH.Logout)
	}

	// Everything below requires a resolved identity.
	authed := r.Group("/", middleware.AuthMiddleware(jwtMgr, blacklist))
	authed.GET("/auth/me", authH.Me)

	student := authed.Group("/", middleware.RequireRoles(models.RoleStudent, models.RoleAdmin))
	{
		student.GET("/marketplace", marketH.List)
		student.POST("/marketplace", marketH.Create)
		student.DELETE("/marketplace/:id", marketH.Delete)
		student.POST("/marketplace/:id/interested", marketH.ExpressInterest)
		student.GET("/marketplace/:id/interests", marketH.ListInterests)
		student.POST("/marketplace/:id/interests/:interestId/accept", marketH.AcceptInterest)

		student.GET("/timetable", timetableH.Get)
		student.POST("/timetable", timetableH.Replace)

		student.GET("/ws", wsH.HandleWebSocket)
	}
}
