package handler

import (
	"net/http"

	"estatehub/internal/services"
	"estatehub/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	service *services.UploadService
}

func NewUploadHandler(service *services.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

func (h *UploadHandler) Presign(c *gin.Context) {
	var req httpdto.PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("file name and content type are required", "INVALID_REQUEST"))
		return
	}

	upload, err := h.service.PresignImage(c.Request.Context(), req.FileName, req.ContentType, req.SizeBytes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse("Upload URL created", upload))
}
