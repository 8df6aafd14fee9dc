package handlers

import (
	"net/http"

	"busbackend/internal/grid"
	"busbackend/internal/http/middleware"
	"busbackend/internal/services"

	"github.com/gin-gonic/gin"
)

type layoutPayload struct {
	Name string    `json:"name"`
	Data grid.Grid `json:"data"`
}

type layoutResponse struct {
	ID   int64     `json:"id"`
	Name string    `json:"name"`
	Data grid.Grid `json:"data"`
}

func layoutService(c *gin.Context) services.LayoutService {
	return services.LayoutService{RequestID: middleware.GetRequestID(c)}
}

// POST /api/layouts
func SaveLayout(c *gin.Context) {
	var req layoutPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	layout, err := layoutService(c).SaveLayout(req.Name, req.Data)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, layoutResponse{ID: layout.ID, Name: layout.Name, Data: req.Data})
}

// GET /api/layouts
func GetLayouts(c *gin.Context) {
	svc := layoutService(c)
	layouts, err := svc.ListLayouts()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	out := make([]layoutResponse, 0, len(layouts))
	for _, l := range layouts {
		_, g, err := svc.GetLayout(l.ID)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		out = append(out, layoutResponse{ID: l.ID, Name: l.Name, Data: g})
	}
	c.JSON(http.StatusOK, gin.H{"layouts": out})
}

// GET /api/layouts/:id
func GetLayoutByID(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	layout, g, err := layoutService(c).GetLayout(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, layoutResponse{ID: layout.ID, Name: layout.Name, Data: g})
}

// PUT /api/layouts/:id — layouts are read only once created.
func UpdateLayout(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	RespondDomainError(c, layoutService(c).UpdateLayout(id))
}

// DELETE /api/layouts/:id — layouts are read only once created.
func DeleteLayout(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	RespondDomainError(c, layoutService(c).DeleteLayout(id))
}
