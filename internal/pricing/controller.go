package pricing

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"majestic/internal/shared/utils/response"
)

type Controller interface {
	CreatePricing(c *gin.Context)
	ListPricing(c *gin.Context)
	GetPricing(c *gin.Context)
	UpdatePricing(c *gin.Context)
	DeletePricing(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreatePricing(c *gin.Context) {
	var req CreatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	pricing, err := ctrl.service.CreatePricing(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Pricing created successfully", pricing)
}

func (ctrl *controller) ListPricing(c *gin.Context) {
	tiers, err := ctrl.service.ListPricing()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Pricing retrieved successfully", tiers)
}

func (ctrl *controller) GetPricing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid pricing id", nil, nil)
		return
	}

	pricing, err := ctrl.service.GetPricingByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Pricing retrieved successfully", pricing)
}

func (ctrl *controller) UpdatePricing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid pricing id", nil, nil)
		return
	}

	var req UpdatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	pricing, err := ctrl.service.UpdatePricing(id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Pricing updated successfully", pricing)
}

func (ctrl *controller) DeletePricing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid pricing id", nil, nil)
		return
	}

	if err := ctrl.service.DeletePricing(id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Pricing deleted successfully", nil)
}
