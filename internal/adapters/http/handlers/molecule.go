package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/chembond-tutor/internal/adapters/http/dto"
	"github.com/jsamuelsen/chembond-tutor/internal/app"
	"github.com/jsamuelsen/chembond-tutor/internal/ports"
)

// MoleculeHandler serves molecule analysis and the catalog listings.
type MoleculeHandler struct {
	service  *app.MoleculeService
	catalog  ports.MoleculeCatalog
	glossary ports.ConceptGlossary
}

// NewMoleculeHandler creates a new molecule handler.
func NewMoleculeHandler(
	service *app.MoleculeService,
	catalog ports.MoleculeCatalog,
	glossary ports.ConceptGlossary,
) *MoleculeHandler {
	return &MoleculeHandler{
		service:  service,
		catalog:  catalog,
		glossary: glossary,
	}
}

// Analyze handles POST /api/v1/molecule/analyze.
// Unknown formulas still produce a heuristic analysis.
//
// @Summary Analyze a molecular formula
// @Tags molecules
// @Accept json
// @Produce json
// @Param request body dto.MoleculeRequest true "Formula"
// @Success 200 {object} dto.MoleculeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/molecule/analyze [post]
func (h *MoleculeHandler) Analyze(c *gin.Context) {
	var req dto.MoleculeRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	analysis, err := h.service.Analyze(c.Request.Context(), req.Formula)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMoleculeResponse(analysis))
}

// ListMolecules handles GET /api/v1/molecules.
func (h *MoleculeHandler) ListMolecules(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewMoleculesResponse(h.catalog.Molecules()))
}

// ListConcepts handles GET /api/v1/concepts.
func (h *MoleculeHandler) ListConcepts(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewConceptsResponse(h.glossary.Concepts()))
}

// RegisterMoleculeRoutes registers molecule and glossary routes on the given router group.
func (h *MoleculeHandler) RegisterMoleculeRoutes(rg *gin.RouterGroup) {
	rg.POST("/molecule/analyze", h.Analyze)
	rg.GET("/molecules", h.ListMolecules)
	rg.GET("/concepts", h.ListConcepts)
}
