package sessiontimes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"majestic/internal/shared/utils/response"
)

type Controller interface {
	CreateSessionTime(c *gin.Context)
	ListSessionTimes(c *gin.Context)
	GetSessionTime(c *gin.Context)
	UpdateSessionTime(c *gin.Context)
	DeleteSessionTime(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateSessionTime(c *gin.Context) {
	var req CreateSessionTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	sessionTime, err := ctrl.service.CreateSessionTime(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Session time created successfully", sessionTime)
}

func (ctrl *controller) ListSessionTimes(c *gin.Context) {
	items, err := ctrl.service.ListSessionTimes()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Session times retrieved successfully", items)
}

func (ctrl *controller) GetSessionTime(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid session time id", nil, nil)
		return
	}

	sessionTime, err := ctrl.service.GetSessionTimeByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Session time retrieved successfully", sessionTime)
}

func (ctrl *controller) UpdateSessionTime(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid session time id", nil, nil)
		return
	}

	var req UpdateSessionTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	sessionTime, err := ctrl.service.UpdateSessionTime(id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Session time updated successfully", sessionTime)
}

func (ctrl *controller) DeleteSessionTime(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid session time id", nil, nil)
		return
	}

	if err := ctrl.service.DeleteSessionTime(id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Session time deleted successfully", nil)
}
