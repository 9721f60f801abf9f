package models

import (
	"time"

	"github.com/google/uuid"
)

// Report is a generated export. Reports are produced by the reporting
// service and only listed here.
type Report struct {
	DefaultModel
	OwnerID  uuid.UUID `json:"ownerId" gorm:"index"`
	Owner    User      `json:"-"`
	FileName string    `json:"fileName" example:"expenses-2024-01.pdf"`
	URL      string    `json:"url" example:"https://reports.example.com/expenses-2024-01.pdf"`
}

func (r Report) PageKey() (time.Time, uuid.UUID) {
	return r.CreatedAt, r.ID
}
