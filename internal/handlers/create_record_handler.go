package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/redade943-code/FabiansWelt/internal/country"
	createmodels "github.com/redade943-code/FabiansWelt/internal/models/create_record"
	"github.com/redade943-code/FabiansWelt/internal/pipeline"
)

// CreateRecord handles one submission: multipart form with the country
// selection, optional texts, and the two files. The pipeline enforces
// the precondition order, so missing parts are passed through as nil.
func (h *RecordsHandler) CreateRecord(c *gin.Context) {
	var req createmodels.CreateRecordRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var selection *country.Selection
	if req.CountryCode != "" {
		name := req.CountryName
		if name == "" {
			name = country.UnnamedPlaceholder
		}
		selection = &country.Selection{Code: req.CountryCode, Name: name}
	}

	image, closeImage := h.formAsset(c, "image")
	defer closeImage()
	audio, closeAudio := h.formAsset(c, "audio")
	defer closeAudio()

	ctx := context.Background()

	rec, err := h.pipeline.Submit(ctx, pipeline.SubmitInput{
		Country: selection,
		Title:   req.Title,
		Info:    req.Info,
		Image:   image,
		Audio:   audio,
	})
	if err != nil {
		h.submitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createmodels.CreateRecordResponse{
		Record:  *rec,
		Message: "Record created successfully",
	})
}

// submitError maps pipeline failures to one single-line message each.
func (h *RecordsHandler) submitError(c *gin.Context, err error) {
	var backendErr *pipeline.BackendError

	switch {
	case errors.Is(err, pipeline.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Backend is not configured"})
	case errors.Is(err, pipeline.ErrNoCountry):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a country first"})
	case errors.Is(err, pipeline.ErrMissingAsset):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Image and audio file are both required"})
	case errors.As(err, &backendErr):
		h.logError(c, err, "submission failed at backend")
		c.JSON(http.StatusBadGateway, gin.H{"error": backendErr.Error()})
	default:
		h.logError(c, err, "submission failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create record"})
	}
}

// formAsset opens one uploaded form file. An absent or unreadable part
// yields a nil asset, which the pipeline reports as a missing asset.
func (h *RecordsHandler) formAsset(c *gin.Context, field string) (*pipeline.Asset, func()) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, func() {}
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logError(c, err, "failed to open uploaded file", "field", field)
		return nil, func() {}
	}

	asset := &pipeline.Asset{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
	}
	return asset, func() { file.Close() }
}
