package pipeline

import (
	"context"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/redade943-code/FabiansWelt/internal/country"
	models "github.com/redade943-code/FabiansWelt/internal/models/record"
)

// untitledPlaceholder stands in for the title inside object names when
// the submission has none.
const untitledPlaceholder = "eintrag"

// Asset is one file picked for upload.
type Asset struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// SubmitInput carries everything one submission needs.
type SubmitInput struct {
	Country *country.Selection
	Title   string
	Info    string
	Image   *Asset
	Audio   *Asset
}

// Pipeline sequences one submission: upload image, upload audio, insert
// the metadata row, refresh the record store. The three network steps
// run strictly in order; a failed step aborts the rest. There is no
// compensating deletion: a failed insert after successful uploads leaves
// the two objects orphaned in storage, which is logged but not undone.
type Pipeline struct {
	objects ObjectStore
	records RecordStore
	logger  *zap.SugaredLogger
}

// New creates a pipeline. Passing nil stores produces a pipeline that
// refuses every submission with ErrNotConfigured, which is how the
// degraded "not configured" mode is wired.
func New(objects ObjectStore, records RecordStore, logger *zap.SugaredLogger) *Pipeline {
	return &Pipeline{
		objects: objects,
		records: records,
		logger:  logger,
	}
}

// Configured reports whether the pipeline has working backends.
func (p *Pipeline) Configured() bool {
	return p.objects != nil && p.records != nil
}

// Submit creates one record. Preconditions are checked in a fixed order
// and abort with zero network calls; each maps to a distinct sentinel
// error so callers can render distinct messages.
func (p *Pipeline) Submit(ctx context.Context, in SubmitInput) (*models.Record, error) {
	if !p.Configured() {
		return nil, ErrNotConfigured
	}
	if in.Country == nil || in.Country.Code == "" {
		return nil, ErrNoCountry
	}
	if in.Image == nil || in.Audio == nil {
		return nil, ErrMissingAsset
	}

	// The identifier is assigned exactly once, before any network call,
	// so both object names are derivable and collision-free.
	id := uuid.New().String()

	title := in.Title
	if title == "" {
		title = untitledPlaceholder
	}
	base := safeName(in.Country.Code + "-" + title + "-" + id)

	imageKey := base + "." + fileExt(in.Image.Filename, "jpg")
	imageURL, err := p.objects.UploadImage(ctx, imageKey, in.Image.Body, in.Image.ContentType)
	if err != nil {
		return nil, &BackendError{Op: "upload image", Err: err}
	}

	audioKey := base + "." + fileExt(in.Audio.Filename, "mp3")
	audioURL, err := p.objects.UploadAudio(ctx, audioKey, in.Audio.Body, in.Audio.ContentType)
	if err != nil {
		p.logger.Warnw("audio upload failed, image object is orphaned",
			"record_id", id, "image_key", imageKey, "error", err)
		return nil, &BackendError{Op: "upload audio", Err: err}
	}

	rec, err := p.records.Insert(ctx, models.Record{
		ID:          id,
		CountryCode: in.Country.Code,
		Title:       in.Title,
		Info:        in.Info,
		ImageURL:    imageURL,
		AudioURL:    audioURL,
	})
	if err != nil {
		p.logger.Warnw("row insert failed, uploaded objects are orphaned",
			"record_id", id, "image_key", imageKey, "audio_key", audioKey, "error", err)
		return nil, &BackendError{Op: "insert record", Err: err}
	}

	p.records.Refresh(ctx)

	p.logger.Infow("record created",
		"record_id", rec.ID, "country_code", rec.CountryCode,
		"image_key", imageKey, "audio_key", audioKey)

	return rec, nil
}
