package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rotahub/config"
	"rotahub/internal/api/handler"
	"rotahub/internal/api/middleware"
	"rotahub/pkg/jwt"
	"rotahub/pkg/redis"
)

// Setup builds the Gin engine. Reads are public so wallboards and employee
// self-service need no login; every mutation and export sits behind admin
// auth.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger, "/health"))
	r.Use(middleware.CORS(&cfg.Server.CORS))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Public reads.
		v1.GET("/employees", h.Employee.List)
		v1.GET("/employees/:id", h.Employee.Get)
		v1.GET("/rota", h.Rota.List)
		v1.GET("/rota/employees/:id", h.Rota.ListEmployee)
		v1.GET("/attendance", h.Attendance.List)
		v1.GET("/exceptions", h.Exception.List)
		v1.GET("/exceptions/:id", h.Exception.Get)
		v1.GET("/reports/summary", h.Report.MonthlySummary)

		// Admin-gated mutations and exports.
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb), middleware.RoleAuth("admin"))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			authorized.POST("/employees", h.Employee.Create)
			authorized.PUT("/employees/:id", h.Employee.Update)
			authorized.DELETE("/employees/:id", h.Employee.Delete)

			authorized.POST("/rota/generate", h.Rota.Generate)

			authorized.POST("/attendance", h.Attendance.Create)
			authorized.POST("/attendance/import", h.Attendance.Import)

			authorized.POST("/exceptions/process", h.Exception.Process)
			authorized.PUT("/exceptions/:id", h.Exception.Review)

			export := authorized.Group("/export")
			{
				export.GET("/rota", h.Export.Rota)
				export.GET("/rota/employees/:id/ics", h.Export.RotaICS)
				export.GET("/exceptions", h.Export.Exceptions)
				export.GET("/attendance", h.Export.Attendance)
				export.GET("/employees", h.Export.Employees)
				export.GET("/summary", h.Export.Summary)
			}
		}
	}

	return r
}
