package models

// CreateRecordRequest is the multipart form a submission carries; the
// image and audio files arrive as separate form parts.
type CreateRecordRequest struct {
	CountryCode string `form:"country_code"`
	CountryName string `form:"country_name"`
	Title       string `form:"title"`
	Info        string `form:"info"`
}
