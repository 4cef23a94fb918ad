package sessions

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"majestic/internal/shared/apperror"
	"majestic/internal/shared/utils/response"
)

type Controller interface {
	CreateSession(c *gin.Context)
	GetSession(c *gin.Context)
	ListSessions(c *gin.Context)
	GetSessionsByDay(c *gin.Context)
	GetProgram(c *gin.Context)
	GetSessionsByEvent(c *gin.Context)
	UpdateSession(c *gin.Context)
	DeleteSession(c *gin.Context)
	SellTickets(c *gin.Context)
	ReleaseTickets(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request data", err.Error())
		return
	}

	userID, err := userIDFromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	session, err := ctrl.service.CreateSession(userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Session created successfully", session)
}

func (ctrl *controller) GetSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid session ID", nil)
		return
	}

	session, err := ctrl.service.GetSessionByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Session retrieved successfully", session)
}

func (ctrl *controller) ListSessions(c *gin.Context) {
	var query SessionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationError(c, "Invalid query parameters", err.Error())
		return
	}

	result, err := ctrl.service.ListSessions(query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Sessions retrieved successfully", result)
}

func (ctrl *controller) GetSessionsByDay(c *gin.Context) {
	items, err := ctrl.service.GetSessionsByDay(c.Request.Context(), c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Sessions retrieved successfully", items)
}

func (ctrl *controller) GetProgram(c *gin.Context) {
	from := c.DefaultQuery("from", time.Now().UTC().Format("2006-01-02"))
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil {
		response.ValidationError(c, "Invalid days parameter", nil)
		return
	}

	program, err := ctrl.service.GetProgram(c.Request.Context(), from, days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Program retrieved successfully", program)
}

func (ctrl *controller) GetSessionsByEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.ValidationError(c, "Invalid event ID", nil)
		return
	}

	items, err := ctrl.service.GetSessionsByEvent(eventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Sessions retrieved successfully", items)
}

func (ctrl *controller) UpdateSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid session ID", nil)
		return
	}

	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request data", err.Error())
		return
	}

	session, err := ctrl.service.UpdateSession(id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Session updated successfully", session)
}

func (ctrl *controller) DeleteSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid session ID", nil)
		return
	}

	if err := ctrl.service.DeleteSession(id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Session deleted successfully", nil)
}

func (ctrl *controller) SellTickets(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid session ID", nil)
		return
	}

	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request data", err.Error())
		return
	}

	session, err := ctrl.service.SellTickets(id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Tickets sold successfully", session)
}

func (ctrl *controller) ReleaseTickets(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid session ID", nil)
		return
	}

	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request data", err.Error())
		return
	}

	session, err := ctrl.service.ReleaseTickets(id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Tickets released successfully", session)
}

func userIDFromContext(c *gin.Context) (uuid.UUID, error) {
	raw, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, apperror.New(apperror.Unauthorized, "Authentication required")
	}
	idStr, ok := raw.(string)
	if !ok {
		return uuid.Nil, apperror.New(apperror.Unauthorized, "Authentication required")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, apperror.New(apperror.Unauthorized, "Invalid user identity")
	}
	return id, nil
}
