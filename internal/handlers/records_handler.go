package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	listmodels "github.com/redade943-code/FabiansWelt/internal/models/list_records"
	recordmodels "github.com/redade943-code/FabiansWelt/internal/models/record"
	"github.com/redade943-code/FabiansWelt/internal/pipeline"
	"github.com/redade943-code/FabiansWelt/internal/store"
)

type RecordsHandler struct {
	pipeline *pipeline.Pipeline
	store    *store.Store
	logger   *zap.SugaredLogger
}

// NewRecordsHandler creates a new records handler. The store may be nil
// when the backend is not configured; reads then degrade to an empty
// list instead of failing.
func NewRecordsHandler(pipe *pipeline.Pipeline, st *store.Store, logger *zap.SugaredLogger) *RecordsHandler {
	return &RecordsHandler{
		pipeline: pipe,
		store:    st,
		logger:   logger,
	}
}

// ListRecords returns the current snapshot, newest first, optionally
// narrowed to one country via the ?country query parameter.
func (h *RecordsHandler) ListRecords(c *gin.Context) {
	countryCode := c.Query("country")

	var records []recordmodels.Record
	switch {
	case h.store == nil:
		records = []recordmodels.Record{}
	case countryCode != "":
		records = h.store.FilterByCountry(countryCode)
	default:
		records = h.store.All()
	}

	c.JSON(http.StatusOK, listmodels.ListRecordsResponse{
		Records: records,
		Country: countryCode,
		Total:   len(records),
	})
}
