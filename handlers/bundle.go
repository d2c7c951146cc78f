package handlers

import (
	"github.com/gin-gonic/gin"

	"surfbrew/services/user"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// UserService is needed by the auth middleware on protected groups.
	UserService user.UserService

	// Auth endpoints
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc
	MeHandler       gin.HandlerFunc

	// Session endpoints
	ListSessionsHandler  gin.HandlerFunc
	CreateSessionHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler     gin.HandlerFunc
	ListBookingsHandler      gin.HandlerFunc
	AdminListBookingsHandler gin.HandlerFunc
	CancelBookingHandler     gin.HandlerFunc
	AttendBookingHandler     gin.HandlerFunc

	// Directory endpoints
	ListCoachesHandler  gin.HandlerFunc
	CreateCoachHandler  gin.HandlerFunc
	ListSchoolsHandler  gin.HandlerFunc
	CreateSchoolHandler gin.HandlerFunc
}
