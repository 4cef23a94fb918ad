package languages

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"majestic/internal/shared/utils/response"
)

type Controller interface {
	CreateLanguage(c *gin.Context)
	ListLanguages(c *gin.Context)
	GetLanguage(c *gin.Context)
	UpdateLanguage(c *gin.Context)
	DeleteLanguage(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateLanguage(c *gin.Context) {
	var req CreateLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	language, err := ctrl.service.CreateLanguage(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Language created successfully", language)
}

func (ctrl *controller) ListLanguages(c *gin.Context) {
	items, err := ctrl.service.ListLanguages()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Languages retrieved successfully", items)
}

func (ctrl *controller) GetLanguage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid language id", nil, nil)
		return
	}

	language, err := ctrl.service.GetLanguageByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Language retrieved successfully", language)
}

func (ctrl *controller) UpdateLanguage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid language id", nil, nil)
		return
	}

	var req UpdateLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	language, err := ctrl.service.UpdateLanguage(id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Language updated successfully", language)
}

func (ctrl *controller) DeleteLanguage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid language id", nil, nil)
		return
	}

	if err := ctrl.service.DeleteLanguage(id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Language deleted successfully", nil)
}
