package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/farmergpt/internal/chatbot"
	"github.com/BruksfildServices01/farmergpt/internal/httperr"
	"github.com/BruksfildServices01/farmergpt/internal/httpresp"
)

type ChatbotHandler struct {
	gateway *chatbot.Gateway
}

func NewChatbotHandler(gateway *chatbot.Gateway) *ChatbotHandler {
	return &ChatbotHandler{gateway: gateway}
}

type ChatRequest struct {
	Message string `json:"message"`
}

func (h *ChatbotHandler) Ask(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.Respond(c, invalidRequest(err))
		return
	}

	answer, err := h.gateway.Ask(c.Request.Context(), req.Message)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, answer)
}
