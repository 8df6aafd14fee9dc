package handlers

import (
	"net/http"

	"busbackend/internal/http/middleware"
	"busbackend/internal/services"

	"github.com/gin-gonic/gin"
)

type routePayload struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

func tripService(c *gin.Context) services.TripService {
	return services.TripService{
		RequestID: middleware.GetRequestID(c),
		Bookings:  bookingService(c),
	}
}

// GET /api/routes
func GetRoutes(c *gin.Context) {
	routes, err := tripService(c).ListRoutes()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

// POST /api/routes
func CreateRoute(c *gin.Context) {
	var req routePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	route, err := tripService(c).CreateRoute(req.Source, req.Destination)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, route)
}

// PUT /api/routes/:id — routes are read only once created.
func UpdateRoute(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	RespondDomainError(c, tripService(c).UpdateRoute(id))
}

// DELETE /api/routes/:id — routes are read only once created.
func DeleteRoute(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	RespondDomainError(c, tripService(c).DeleteRoute(id))
}
