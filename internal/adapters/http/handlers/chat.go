package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/chembond-tutor/internal/adapters/http/dto"
	"github.com/jsamuelsen/chembond-tutor/internal/app"
)

// ChatHandler serves the tutor chat endpoint.
type ChatHandler struct {
	service *app.ChatService
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(service *app.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chat handles POST /api/v1/chat.
//
// @Summary Ask the tutor a question
// @Tags tutor
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Question"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{
		Reply: h.service.Answer(c.Request.Context(), req.Message),
	})
}

// RegisterChatRoutes registers chat routes on the given router group.
func (h *ChatHandler) RegisterChatRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.Chat)
}
