package handlers

import (
	"github.com/gin-gonic/gin"
)

// Schedules are created through trip scheduling only; the direct mutation
// endpoints exist to answer with the read-only error instead of a 404.

// PUT /api/schedules/:id
func UpdateSchedule(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	RespondDomainError(c, tripService(c).UpdateSchedule(id))
}

// DELETE /api/schedules/:id
func DeleteSchedule(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	RespondDomainError(c, tripService(c).DeleteSchedule(id))
}
