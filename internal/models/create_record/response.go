package models

import (
	recordmodels "github.com/redade943-code/FabiansWelt/internal/models/record"
)

type CreateRecordResponse struct {
	Record  recordmodels.Record `json:"record"`
	Message string              `json:"message"`
}
