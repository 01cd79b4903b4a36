package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Message string `json:"message"`
}

// Ask обработчик для POST /api/chat - ответ консультанта. Токен необязателен:
// с ним диалог сохраняется в историю.
func (h *Handler) Ask(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	answer, err := h.Chat.Ask(c.Request.Context(), userID(c), req.Message)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, answer)
}

func (h *Handler) ChatSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"welcome": h.Chat.Welcome(), "suggestions": h.Chat.Suggestions()})
}

func (h *Handler) ChatHistory(c *gin.Context) {
	history, err := h.Chat.History(c.Request.Context(), userID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
