package handlers

import (
	"net/http"

	"davisbacon/internal/api/models"
	"davisbacon/internal/config"
	"davisbacon/internal/model"
	"davisbacon/internal/scenario"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only reference data: parameter metadata,
// scenario presets and citations.
type CatalogHandler struct {
	cfg     *config.Config
	catalog *scenario.Catalog
}

func NewCatalogHandler(cfg *config.Config, catalog *scenario.Catalog) *CatalogHandler {
	return &CatalogHandler{cfg: cfg, catalog: catalog}
}

// ListParameters handles GET /api/v1/parameters
func (h *CatalogHandler) ListParameters(c *gin.Context) {
	params := make([]models.ParameterInfo, 0, len(model.Fields()))
	for _, f := range model.Fields() {
		info := models.ParameterInfo{
			Name:       f,
			ValidRange: model.RangeOf(f),
			Integer:    f.Integer(),
		}
		if pc, ok := h.cfg.Parameters[string(f)]; ok {
			info.ParameterConfig = pc
		} else {
			info.Min = info.ValidRange.Min
			info.Max = info.ValidRange.Max
		}
		params = append(params, info)
	}
	c.JSON(http.StatusOK, models.ParametersResponse{Parameters: params})
}

// ListScenarios handles GET /api/v1/scenarios
func (h *CatalogHandler) ListScenarios(c *gin.Context) {
	c.JSON(http.StatusOK, models.ScenariosResponse{Scenarios: h.catalog.All()})
}

// GetScenario handles GET /api/v1/scenarios/:name
func (h *CatalogHandler) GetScenario(c *gin.Context) {
	s, err := h.catalog.Get(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// ListSources handles GET /api/v1/sources
func (h *CatalogHandler) ListSources(c *gin.Context) {
	sources := h.cfg.Sources
	if sources == nil {
		sources = []config.SourceConfig{}
	}
	c.JSON(http.StatusOK, models.SourcesResponse{Sources: sources})
}
