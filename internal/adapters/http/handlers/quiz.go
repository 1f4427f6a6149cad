package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/chembond-tutor/internal/adapters/http/dto"
	"github.com/jsamuelsen/chembond-tutor/internal/app"
)

// QuizHandler serves quiz generation.
type QuizHandler struct {
	service      *app.QuizService
	defaultCount int
}

// NewQuizHandler creates a new quiz handler. defaultCount is used when a
// request omits the count.
func NewQuizHandler(service *app.QuizService, defaultCount int) *QuizHandler {
	return &QuizHandler{
		service:      service,
		defaultCount: defaultCount,
	}
}

// Generate handles POST /api/v1/quiz.
// Out-of-range counts are clamped rather than rejected.
//
// @Summary Generate a multiple-choice quiz
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Topic and count"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quiz [post]
func (h *QuizHandler) Generate(c *gin.Context) {
	var req dto.QuizRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	count := h.defaultCount
	if req.Count != nil {
		count = *req.Count
	}

	items := h.service.Generate(c.Request.Context(), req.Topic, count)
	c.JSON(http.StatusOK, dto.NewQuizResponse(items))
}

// Topics handles GET /api/v1/quiz/topics.
func (h *QuizHandler) Topics(c *gin.Context) {
	c.JSON(http.StatusOK, dto.TopicsResponse{Topics: h.service.Topics()})
}

// RegisterQuizRoutes registers quiz routes on the given router group.
func (h *QuizHandler) RegisterQuizRoutes(rg *gin.RouterGroup) {
	quiz := rg.Group("/quiz")
	quiz.POST("", h.Generate)
	quiz.GET("/topics", h.Topics)
}
