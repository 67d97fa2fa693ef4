package handler

import (
	"net/http"

	"estatehub/internal/search"
	"estatehub/internal/services"
	"estatehub/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	service *services.PropertyService
}

func NewPropertyHandler(service *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

func (h *PropertyHandler) List(c *gin.Context) {
	var req httpdto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(err.Error(), "INVALID_REQUEST"))
		return
	}

	p := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), &p); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse("Property listed successfully", gin.H{"property": p}))
}

func (h *PropertyHandler) Find(c *gin.Context) {
	f := search.ParseFilter(c.Request.URL.Query())

	result, err := h.service.Search(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse("Properties found successfully", result))
}

func (h *PropertyHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid property id", "INVALID_REQUEST"))
		return
	}

	var req httpdto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(err.Error(), "INVALID_REQUEST"))
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, req.ToUpdates())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse("Property updated successfully", gin.H{"property": p}))
}

func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid property id", "INVALID_REQUEST"))
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse("Property found", gin.H{"property": p}))
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid property id", "INVALID_REQUEST"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse("Property deleted successfully", gin.H{"propertyId": id}))
}
