package homehero

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"majestic/internal/shared/utils/response"
)

type Controller interface {
	CreateHero(c *gin.Context)
	ListHeroes(c *gin.Context)
	GetHero(c *gin.Context)
	UpdateHero(c *gin.Context)
	DeleteHero(c *gin.Context)
	ReorderHero(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateHero(c *gin.Context) {
	var req CreateHeroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request data", err.Error())
		return
	}

	item, err := ctrl.service.CreateHero(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Hero item created successfully", item)
}

func (ctrl *controller) ListHeroes(c *gin.Context) {
	items, err := ctrl.service.ListHeroes()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Hero items retrieved successfully", items)
}

func (ctrl *controller) GetHero(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid hero item ID", nil)
		return
	}

	item, err := ctrl.service.GetHeroByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Hero item retrieved successfully", item)
}

func (ctrl *controller) UpdateHero(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid hero item ID", nil)
		return
	}

	var req UpdateHeroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request data", err.Error())
		return
	}

	item, err := ctrl.service.UpdateHero(id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Hero item updated successfully", item)
}

func (ctrl *controller) DeleteHero(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid hero item ID", nil)
		return
	}

	if err := ctrl.service.DeleteHero(id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Hero item deleted successfully", nil)
}

type reorderRequest struct {
	Order *int `json:"order" binding:"required,min=0"`
}

func (ctrl *controller) ReorderHero(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid hero item ID", nil)
		return
	}

	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request data", err.Error())
		return
	}

	if err := ctrl.service.Reorder(id, *req.Order); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Hero item reordered successfully", nil)
}
