package handlers

import (
	"net/http"

	"busbackend/internal/domain/models"
	"busbackend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type vehicleTypePayload struct {
	Name     string `json:"name"`
	LayoutID int64  `json:"layoutId"`
}

type vehiclePayload struct {
	VehicleTypeID int64  `json:"vehicleTypeId"`
	NumberPlate   string `json:"numberPlate"`
}

// POST /api/vehicle-types
func CreateVehicleType(c *gin.Context) {
	var req vehicleTypePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	vt, err := tripService(c).CreateVehicleType(req.Name, req.LayoutID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vt)
}

// POST /api/vehicles
func CreateVehicle(c *gin.Context) {
	var req vehiclePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	v, err := tripService(c).CreateVehicle(req.VehicleTypeID, req.NumberPlate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// PUT /api/vehicles/:id — vehicles are read only once created.
func UpdateVehicle(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	RespondDomainError(c, tripService(c).UpdateVehicle(id))
}

// DELETE /api/vehicles/:id
// Vehicles are read only like everything else, except that an operator may
// force the delete through the privileged path.
func DeleteVehicle(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	privileged := middleware.CurrentRole(c) == models.RoleOperator
	if err := tripService(c).DeleteVehicle(id, privileged); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
