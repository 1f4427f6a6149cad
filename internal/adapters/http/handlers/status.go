package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/chembond-tutor/internal/adapters/http/dto"
	"github.com/jsamuelsen/chembond-tutor/internal/platform/config"
)

// RootMessage is returned by GET /.
const RootMessage = "ChemBond Tutor API is running"

// Status markers used by the /test report.
const (
	statusRunning = "✅ Running"
	statusNotUsed = "❌ Not Used"
	statusSet     = "✅ Set"
	statusNotSet  = "❌ Not Set"
)

// StatusHandler serves the root banner and the legacy /test report.
type StatusHandler struct {
	db config.DatabaseConfig
}

// NewStatusHandler creates a status handler reporting on db.
func NewStatusHandler(db config.DatabaseConfig) *StatusHandler {
	return &StatusHandler{db: db}
}

// Root handles GET /.
func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: RootMessage})
}

// Report handles GET /test. Only the presence of database settings is
// reported, never their values.
func (h *StatusHandler) Report(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusReport{
		Backend:      statusRunning,
		Database:     statusNotUsed,
		DatabaseURL:  presence(h.db.URL),
		DatabaseName: presence(h.db.Name),
	})
}

func presence(v string) string {
	if v == "" {
		return statusNotSet
	}

	return statusSet
}

// RegisterStatusRoutesOnEngine registers / and /test on the engine root.
func (h *StatusHandler) RegisterStatusRoutesOnEngine(engine *gin.Engine) {
	engine.GET("/", h.Root)
	engine.GET("/test", h.Report)
}
