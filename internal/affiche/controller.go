package affiche

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"majestic/internal/shared/utils/response"
)

type Controller interface {
	CreateAffiche(c *gin.Context)
	ListAffiches(c *gin.Context)
	GetAffiche(c *gin.Context)
	UpdateAffiche(c *gin.Context)
	DeleteAffiche(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateAffiche(c *gin.Context) {
	var req CreateAfficheRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request data", err.Error())
		return
	}

	item, err := ctrl.service.CreateAffiche(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Affiche item created successfully", item)
}

func (ctrl *controller) ListAffiches(c *gin.Context) {
	items, err := ctrl.service.ListAffiches()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Affiche items retrieved successfully", items)
}

func (ctrl *controller) GetAffiche(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid affiche item ID", nil)
		return
	}

	item, err := ctrl.service.GetAfficheByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Affiche item retrieved successfully", item)
}

func (ctrl *controller) UpdateAffiche(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid affiche item ID", nil)
		return
	}

	var req UpdateAfficheRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request data", err.Error())
		return
	}

	item, err := ctrl.service.UpdateAffiche(id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Affiche item updated successfully", item)
}

func (ctrl *controller) DeleteAffiche(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid affiche item ID", nil)
		return
	}

	if err := ctrl.service.DeleteAffiche(id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Affiche item deleted successfully", nil)
}
