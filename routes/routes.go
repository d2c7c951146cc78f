package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"surfbrew/handlers"
	"surfbrew/middleware"
	"surfbrew/models"
	"surfbrew/utils"
)

// operatorRoles is the allowed set for every protected operation; the
// three roles are equally privileged.
var operatorRoles = []string{models.RoleAdmin, models.RoleCoach, models.RoleSchool}

// RegisterAuthRoutes registers registration, login and identity endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", hb.RegisterHandler)
		auth.POST("/login", hb.LoginHandler)
		auth.GET("/me", middleware.OperatorAuthMiddleware(hb.UserService, operatorRoles...), hb.MeHandler)
	}
}

// RegisterSessionRoutes registers public listing and operator creation.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.GET("", hb.ListSessionsHandler)
		api.POST("", middleware.OperatorAuthMiddleware(hb.UserService, operatorRoles...), hb.CreateSessionHandler)
	}
}

// RegisterBookingRoutes registers the public booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
	}
}

// RegisterAdminRoutes registers operator-only booking administration.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.OperatorAuthMiddleware(hb.UserService, operatorRoles...))
	{
		admin.GET("/bookings", hb.AdminListBookingsHandler)
		admin.POST("/bookings/:id/cancel", hb.CancelBookingHandler)
		admin.POST("/bookings/:id/attend", hb.AttendBookingHandler)
	}
}

// RegisterDirectoryRoutes registers coach and school endpoints.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	coaches := r.Group("/api/coaches")
	{
		coaches.GET("", hb.ListCoachesHandler)
		coaches.POST("", middleware.OperatorAuthMiddleware(hb.UserService, operatorRoles...), hb.CreateCoachHandler)
	}
	schools := r.Group("/api/schools")
	{
		schools.GET("", hb.ListSchoolsHandler)
		schools.POST("", middleware.OperatorAuthMiddleware(hb.UserService, operatorRoles...), hb.CreateSchoolHandler)
	}
}

// RegisterHealthRoute registers liveness endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"name": "Surfbrew API", "message": "Welcome to Surfbrew"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
}
