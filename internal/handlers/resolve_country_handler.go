package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/redade943-code/FabiansWelt/internal/country"
	resolvemodels "github.com/redade943-code/FabiansWelt/internal/models/resolve_country"
)

type CountryHandler struct {
	logger *zap.SugaredLogger
}

// NewCountryHandler creates a new country handler
func NewCountryHandler(logger *zap.SugaredLogger) *CountryHandler {
	return &CountryHandler{logger: logger}
}

// ResolveCountry maps a raw map-feature property bag to a normalized
// country selection plus its flag pictograph. Resolution never fails;
// missing data degrades to an empty code and a placeholder name.
func (h *CountryHandler) ResolveCountry(c *gin.Context) {
	var req resolvemodels.ResolveCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	props := make(map[string]string, len(req.Properties))
	for k, v := range req.Properties {
		if s, ok := v.(string); ok {
			props[k] = s
		}
	}

	sel := country.Resolve(props)

	c.JSON(http.StatusOK, resolvemodels.ResolveCountryResponse{
		Code: sel.Code,
		Name: sel.Name,
		Flag: country.FlagEmoji(sel.Code),
	})
}
