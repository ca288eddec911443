package models

import (
	recordmodels "github.com/redade943-code/FabiansWelt/internal/models/record"
)

type ListRecordsResponse struct {
	Records []recordmodels.Record `json:"records"`
	Country string                `json:"country,omitempty"`
	Total   int                   `json:"total"`
}
