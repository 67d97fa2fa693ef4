package handler

import (
	"net/http"
	"strconv"

	"estatehub/internal/services"
	"estatehub/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) Create(c *gin.Context) {
	var req httpdto.CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(err.Error(), "INVALID_REQUEST"))
		return
	}

	created, err := h.service.CreateChat(c.Request.Context(), req.UserIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse("Chat created successfully", gin.H{"chat": created}))
}

// ListForUser reads the caller identity from the user-id header; without it
// the request is unauthorized.
func (h *ChatHandler) ListForUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.GetHeader("user-id"), 10, 32)
	if err != nil || userID == 0 {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized: user id is missing", "UNAUTHORIZED"))
		return
	}

	chats, err := h.service.ListChatsForUser(c.Request.Context(), uint(userID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse("Chats retrieved successfully", gin.H{"chats": chats}))
}

func (h *ChatHandler) Messages(c *gin.Context) {
	chatID := c.Param("id")

	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	messages, err := h.service.GetMessages(c.Request.Context(), chatID, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse("Chat retrieved successfully", gin.H{"messages": messages}))
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	chatID := c.Param("id")

	var req httpdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("message text and user id are required", "INVALID_REQUEST"))
		return
	}

	m, err := h.service.SendMessage(c.Request.Context(), chatID, req.UserID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse("Message sent successfully", gin.H{"message": m}))
}

func (h *ChatHandler) Delete(c *gin.Context) {
	chatID := c.Param("id")

	if err := h.service.DeleteChat(c.Request.Context(), chatID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse[any]("Chat deleted successfully", nil))
}
