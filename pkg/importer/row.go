package importer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
)

// Field names of a row.
const (
	FieldDescription = "Description"
	FieldAmount      = "Amount"
	FieldCategory    = "Category"
	FieldDate        = "Date"
	FieldImage       = "Image"
)

var knownFields = []string{FieldDescription, FieldAmount, FieldCategory, FieldDate, FieldImage}

// RawRow is a loosely typed row as uploaded, before any validation.
//
// Values are usually strings for CSV uploads and strings or numbers for JSON uploads.
type RawRow map[string]any

// Get returns the value for a field. Keys are compared case-insensitively
// when there is no exact match.
func (r RawRow) Get(field string) (any, bool) {
	if v, ok := r[field]; ok {
		return v, true
	}

	for k, v := range r {
		if strings.EqualFold(k, field) {
			return v, true
		}
	}

	return nil, false
}

// Set sets a field, replacing a differently cased key for the same field.
func (r RawRow) Set(field string, value any) {
	for k := range r {
		if k != field && strings.EqualFold(k, field) {
			delete(r, k)
		}
	}
	r[field] = value
}

func (r RawRow) Clone() RawRow {
	return maps.Clone(r)
}

// Row is a validated row that can be submitted.
type Row struct {
	Description string          `json:"description" validate:"min=5" example:"Train ticket to Hamburg"`
	Amount      decimal.Decimal `json:"amount" validate:"gte=0" example:"39.90"`
	Category    string          `json:"category" validate:"oneof=Food Transport Housing Utilities Health Entertainment Shopping Education Other" example:"Transport"`
	Date        time.Time       `json:"date" validate:"required" example:"2024-03-08T00:00:00Z"`
	Image       *string         `json:"image,omitempty" example:"https://example.com/receipt.png"`
}

// Issue describes why a field of a row failed validation.
type Issue struct {
	Field   string `json:"field" example:"description"`
	Rule    string `json:"rule" example:"min"`
	Message string `json:"message" example:"description must be at least 5 characters long"`
}

// Result is the outcome of classifying a row. It is either a ValidRow or an InvalidRow.
type Result interface {
	isResult()
}

type ValidRow struct {
	Row Row
}

type InvalidRow struct {
	Issues []Issue
}

func (ValidRow) isResult()   {}
func (InvalidRow) isResult() {}
