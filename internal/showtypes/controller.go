package showtypes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"majestic/internal/shared/utils/response"
)

type Controller interface {
	CreateShowType(c *gin.Context)
	ListShowTypes(c *gin.Context)
	GetShowType(c *gin.Context)
	UpdateShowType(c *gin.Context)
	DeleteShowType(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateShowType(c *gin.Context) {
	var req CreateShowTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	showType, err := ctrl.service.CreateShowType(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Show type created successfully", showType)
}

func (ctrl *controller) ListShowTypes(c *gin.Context) {
	items, err := ctrl.service.ListShowTypes()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Show types retrieved successfully", items)
}

func (ctrl *controller) GetShowType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid show type id", nil, nil)
		return
	}

	showType, err := ctrl.service.GetShowTypeByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Show type retrieved successfully", showType)
}

func (ctrl *controller) UpdateShowType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid show type id", nil, nil)
		return
	}

	var req UpdateShowTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	showType, err := ctrl.service.UpdateShowType(id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Show type updated successfully", showType)
}

func (ctrl *controller) DeleteShowType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid show type id", nil, nil)
		return
	}

	if err := ctrl.service.DeleteShowType(id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Show type deleted successfully", nil)
}
