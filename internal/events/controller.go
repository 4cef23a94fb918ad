package events

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"majestic/internal/shared/apperror"
	"majestic/internal/shared/utils/response"
)

// Uploader stores an uploaded image and returns its public URL.
type Uploader interface {
	SaveImage(file *multipart.FileHeader) (string, error)
}

type Controller interface {
	SetUploader(uploader Uploader)
	CreateEvent(c *gin.Context)
	GetEvent(c *gin.Context)
	ListEvents(c *gin.Context)
	UpdateEvent(c *gin.Context)
	UpdatePoster(c *gin.Context)
	DeleteEvent(c *gin.Context)
	GetHomeContent(c *gin.Context)
	GetCatalogue(c *gin.Context)
}

type controller struct {
	service  Service
	uploader Uploader
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) SetUploader(uploader Uploader) {
	ctrl.uploader = uploader
}

func (ctrl *controller) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request data", err.Error())
		return
	}

	adminID, err := userIDFromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	event, err := ctrl.service.CreateEvent(adminID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Event created successfully", event)
}

func (ctrl *controller) GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid event ID", nil)
		return
	}

	event, err := ctrl.service.GetEventByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Event retrieved successfully", event)
}

func (ctrl *controller) ListEvents(c *gin.Context) {
	var query EventListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationError(c, "Invalid query parameters", err.Error())
		return
	}

	result, err := ctrl.service.ListEvents(query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Events retrieved successfully", result)
}

func (ctrl *controller) UpdateEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid event ID", nil)
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request data", err.Error())
		return
	}

	event, err := ctrl.service.UpdateEvent(id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Event updated successfully", event)
}

func (ctrl *controller) UpdatePoster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid event ID", nil)
		return
	}

	if ctrl.uploader == nil {
		response.Error(c, apperror.New(apperror.Internal, "Upload storage is not configured"))
		return
	}

	file, err := c.FormFile("poster")
	if err != nil {
		response.ValidationError(c, "Poster image is required", nil)
		return
	}

	url, err := ctrl.uploader.SaveImage(file)
	if err != nil {
		response.Error(c, err)
		return
	}

	event, err := ctrl.service.UpdatePoster(id, url)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Poster updated successfully", event)
}

func (ctrl *controller) DeleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid event ID", nil)
		return
	}

	if err := ctrl.service.DeleteEvent(id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Event deleted successfully", nil)
}

func (ctrl *controller) GetHomeContent(c *gin.Context) {
	content, err := ctrl.service.GetHomeContent(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Home content retrieved successfully", content)
}

func (ctrl *controller) GetCatalogue(c *gin.Context) {
	catalogue, err := ctrl.service.GetCatalogue(c.Request.Context(), c.Query("type"), c.Query("genre"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Catalogue retrieved successfully", catalogue)
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
