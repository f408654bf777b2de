package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zhilu/aicareer-backend/internal/http/response"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
	"github.com/zhilu/aicareer-backend/internal/platform/openai"
	"github.com/zhilu/aicareer-backend/internal/services"
)

type ChatHandler struct {
	log  *logger.Logger
	chat services.ChatService
}

func NewChatHandler(log *logger.Logger, chatService services.ChatService) *ChatHandler {
	return &ChatHandler{
		log:  log.With("handler", "ChatHandler"),
		chat: chatService,
	}
}

type chatRequest struct {
	Message   string           `json:"message"`
	StudentID string           `json:"studentId"`
	History   []openai.Message `json:"history"`
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	result, err := h.chat.Chat(c.Request.Context(), req.Message, req.StudentID, req.History)
	if err != nil {
		response.RespondAPIError(c, h.log, err)
		return
	}
	response.RespondOK(c, result)
}

func (h *ChatHandler) Suggestions(c *gin.Context) {
	suggestions, err := h.chat.Suggestions(c.Request.Context(), c.Query("studentId"))
	if err != nil {
		response.RespondAPIError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"suggestions": suggestions})
}
