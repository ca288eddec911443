package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	createmodels "github.com/redade943-code/FabiansWelt/internal/models/create_record"
	listmodels "github.com/redade943-code/FabiansWelt/internal/models/list_records"
	recordmodels "github.com/redade943-code/FabiansWelt/internal/models/record"
	"github.com/redade943-code/FabiansWelt/internal/pipeline"
	"github.com/redade943-code/FabiansWelt/internal/store"
)

type fakeObjectStore struct {
	uploads []string
}

func (f *fakeObjectStore) UploadImage(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	f.uploads = append(f.uploads, key)
	return "https://store.example/bilder/" + key, nil
}

func (f *fakeObjectStore) UploadAudio(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	f.uploads = append(f.uploads, key)
	return "https://store.example/audio/" + key, nil
}

type fakeRecordStore struct {
	inserted  []recordmodels.Record
	refreshes int
}

func (f *fakeRecordStore) Insert(ctx context.Context, rec recordmodels.Record) (*recordmodels.Record, error) {
	f.inserted = append(f.inserted, rec)
	return &rec, nil
}

func (f *fakeRecordStore) Refresh(ctx context.Context) {
	f.refreshes++
}

func newTestRouter(h *RecordsHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/records", h.ListRecords)
	router.POST("/api/v1/records", h.CreateRecord)
	return router
}

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		assert.NoError(t, writer.WriteField(k, v))
	}
	for field, filename := range files {
		part, err := writer.CreateFormFile(field, filename)
		assert.NoError(t, err)
		_, err = part.Write([]byte("payload"))
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestListRecordsDegradedMode(t *testing.T) {
	h := NewRecordsHandler(pipeline.New(nil, nil, zap.NewNop().Sugar()), nil, zap.NewNop().Sugar())
	router := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/records?country=DE", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp listmodels.ListRecordsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Records)
	assert.Equal(t, 0, resp.Total)
	assert.Equal(t, "DE", resp.Country)
}

func TestListRecordsEmptyStore(t *testing.T) {
	st := store.New(nil, nil, zap.NewNop().Sugar())
	h := NewRecordsHandler(pipeline.New(nil, nil, zap.NewNop().Sugar()), st, zap.NewNop().Sugar())
	router := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/records", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp listmodels.ListRecordsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Records)
}

func TestCreateRecordSuccess(t *testing.T) {
	objects := &fakeObjectStore{}
	records := &fakeRecordStore{}
	pipe := pipeline.New(objects, records, zap.NewNop().Sugar())
	h := NewRecordsHandler(pipe, nil, zap.NewNop().Sugar())
	router := newTestRouter(h)

	body, contentType := multipartBody(t,
		map[string]string{
			"country_code": "JP",
			"country_name": "Japan",
			"title":        "Song",
			"info":         "ein Lied",
		},
		map[string]string{
			"image": "photo.png",
			"audio": "song.mp3",
		},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp createmodels.CreateRecordResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "JP", resp.Record.CountryCode)
	assert.Equal(t, "Song", resp.Record.Title)
	assert.True(t, strings.HasSuffix(resp.Record.ImageURL, ".png"))
	assert.True(t, strings.HasSuffix(resp.Record.AudioURL, ".mp3"))

	assert.Len(t, objects.uploads, 2)
	assert.Len(t, records.inserted, 1)
	assert.Equal(t, 1, records.refreshes)
}

func TestCreateRecordNoCountry(t *testing.T) {
	objects := &fakeObjectStore{}
	records := &fakeRecordStore{}
	pipe := pipeline.New(objects, records, zap.NewNop().Sugar())
	h := NewRecordsHandler(pipe, nil, zap.NewNop().Sugar())
	router := newTestRouter(h)

	body, contentType := multipartBody(t,
		map[string]string{"title": "Song"},
		map[string]string{"image": "photo.png", "audio": "song.mp3"},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, objects.uploads)
	assert.Empty(t, records.inserted)
}

func TestCreateRecordMissingAudio(t *testing.T) {
	objects := &fakeObjectStore{}
	records := &fakeRecordStore{}
	pipe := pipeline.New(objects, records, zap.NewNop().Sugar())
	h := NewRecordsHandler(pipe, nil, zap.NewNop().Sugar())
	router := newTestRouter(h)

	body, contentType := multipartBody(t,
		map[string]string{"country_code": "JP"},
		map[string]string{"image": "photo.png"},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, objects.uploads)
	assert.Empty(t, records.inserted)
}

func TestCreateRecordNotConfigured(t *testing.T) {
	h := NewRecordsHandler(pipeline.New(nil, nil, zap.NewNop().Sugar()), nil, zap.NewNop().Sugar())
	router := newTestRouter(h)

	body, contentType := multipartBody(t,
		map[string]string{"country_code": "JP"},
		map[string]string{"image": "photo.png", "audio": "song.mp3"},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
