package uploads

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"majestic/internal/shared/utils/response"
)

type Controller interface {
	UploadImage(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.ValidationError(c, "Image file is required", nil)
		return
	}

	url, err := ctrl.service.SaveImage(file)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Image uploaded successfully", gin.H{"url": url})
}
