// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Calendar endpoints
	GetDayView        gin.HandlerFunc
	CheckAvailability gin.HandlerFunc

	// Booking workflow endpoints
	InitiateSession gin.HandlerFunc
	UpdateSession   gin.HandlerFunc
	ConfirmBooking  gin.HandlerFunc
	CancelSession   gin.HandlerFunc
	RequestDelete   gin.HandlerFunc
	ConfirmDelete   gin.HandlerFunc

	// Client directory endpoints
	ListClients   gin.HandlerFunc
	GetClientByID gin.HandlerFunc
}
