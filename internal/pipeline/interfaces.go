package pipeline

import (
	"context"
	"io"

	models "github.com/redade943-code/FabiansWelt/internal/models/record"
)

// ObjectStore is the slice of object storage the pipeline needs: upload
// an object into the image or audio container and get its public URL
// back. Uploads are non-overwriting.
type ObjectStore interface {
	UploadImage(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	UploadAudio(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// RecordStore persists the metadata row and exposes the post-write
// refresh of the in-memory record list.
type RecordStore interface {
	Insert(ctx context.Context, rec models.Record) (*models.Record, error)
	Refresh(ctx context.Context)
}
