package importer

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/envelope-zero/tracker/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var imageURL = regexp.MustCompile(`(?i)^https?://\S+\.(jpg|jpeg|gif|png|tiff|bmp|webp)(\?\S*)?$`)

var validate = newValidator()

const (
	// maxAmountDigits is the number of integer digits the store keeps for amounts
	maxAmountDigits = 12

	// maxAmountPlaces is the number of fraction digits an amount may have
	maxAmountPlaces = 2
)

func newValidator() *validator.Validate {
	v := validator.New()

	// Use the JSON names so that issues match what clients send
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(v reflect.Value) any {
		d, ok := v.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		return float64(d.Sign())
	}, decimal.Decimal{})

	return v
}

// Classify validates a raw row.
//
// It never fails as a whole. Every problem with the row is reported as an
// Issue of the InvalidRow result.
func Classify(raw RawRow) Result {
	var issues []Issue
	var row Row

	description, _ := raw.Get(FieldDescription)
	row.Description = coerceString(description)

	category, _ := raw.Get(FieldCategory)
	row.Category = coerceString(category)

	amount, err := parseAmount(raw)
	if err != nil {
		issues = append(issues, *err)
	}
	row.Amount = amount

	date, err := parseDate(raw)
	if err != nil {
		issues = append(issues, *err)
	}
	row.Date = date

	// Invalid image links are dropped, they do not invalidate the row
	if image, ok := raw.Get(FieldImage); ok {
		s := coerceString(image)
		if imageURL.MatchString(s) {
			row.Image = &s
		}
	}

	issues = append(issues, rowIssues(row, issues)...)
	if len(issues) > 0 {
		return InvalidRow{Issues: issues}
	}

	return ValidRow{Row: row}
}

// Validate checks a row against the row schema.
func (r Row) Validate() []Issue {
	return rowIssues(r, nil)
}

// rowIssues validates the row struct. Fields that already have an issue are skipped.
func rowIssues(row Row, existing []Issue) []Issue {
	var issues []Issue

	err := validate.Struct(row)
	if err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return []Issue{{Field: "row", Rule: "schema", Message: err.Error()}}
		}

		for _, e := range validationErrors {
			if hasIssue(existing, e.Field()) {
				continue
			}

			issues = append(issues, Issue{
				Field:   e.Field(),
				Rule:    e.Tag(),
				Message: issueText(e),
			})
		}
	}

	if !hasIssue(existing, "amount") && !hasIssue(issues, "amount") {
		if issue := amountIssue(row.Amount); issue != nil {
			issues = append(issues, *issue)
		}
	}

	return issues
}

// amountIssue checks that the amount fits the store and has at most
// maxAmountPlaces fraction digits.
//
// Only the digits of the coefficient are inspected, rescaling amounts
// with huge exponents is too expensive.
func amountIssue(amount decimal.Decimal) *Issue {
	if amount.IsZero() {
		return nil
	}

	digits := strings.TrimPrefix(amount.Coefficient().String(), "-")
	significant := strings.TrimRight(digits, "0")
	exp := int64(amount.Exponent()) + int64(len(digits)-len(significant))

	if -exp > maxAmountPlaces {
		return &Issue{Field: "amount", Rule: "number", Message: fmt.Sprintf("amount must not have more than %d decimal places", maxAmountPlaces)}
	}

	if int64(len(significant))+exp > maxAmountDigits {
		return &Issue{Field: "amount", Rule: "number", Message: fmt.Sprintf("amount must not have more than %d digits before the decimal point", maxAmountDigits)}
	}

	return nil
}

func hasIssue(issues []Issue, field string) bool {
	for _, i := range issues {
		if i.Field == field {
			return true
		}
	}
	return false
}

func issueText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must not be negative", e.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", e.Field(), strings.ReplaceAll(e.Param(), " ", ", "))
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}

func coerceString(v any) string {
	if v == nil {
		return ""
	}

	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}

	return strings.TrimSpace(fmt.Sprint(v))
}

// parseAmount parses the amount of the row from a number or a numeric string.
func parseAmount(raw RawRow) (decimal.Decimal, *Issue) {
	v, ok := raw.Get(FieldAmount)
	if !ok || v == nil || coerceString(v) == "" {
		return decimal.Zero, &Issue{Field: "amount", Rule: "required", Message: "amount is required"}
	}

	var amount decimal.Decimal
	var err error

	switch a := v.(type) {
	case decimal.Decimal:
		amount = a
	case float64:
		amount = decimal.NewFromFloat(a)
	case float32:
		amount = decimal.NewFromFloat32(a)
	case int:
		amount = decimal.NewFromInt(int64(a))
	case int64:
		amount = decimal.NewFromInt(a)
	case json.Number:
		amount, err = decimal.NewFromString(a.String())
	default:
		amount, err = decimal.NewFromString(coerceString(v))
	}

	if err != nil {
		return decimal.Zero, &Issue{Field: "amount", Rule: "number", Message: fmt.Sprintf("amount %q is not a number", coerceString(v))}
	}

	return amount, nil
}

// parseDate parses the date of the row in day/month/year form.
func parseDate(raw RawRow) (time.Time, *Issue) {
	v, ok := raw.Get(FieldDate)
	if !ok || v == nil || coerceString(v) == "" {
		return time.Time{}, &Issue{Field: "date", Rule: "required", Message: "date is required"}
	}

	if t, ok := v.(time.Time); ok {
		return types.DateOf(t), nil
	}

	date, err := types.ParseDate(coerceString(v))
	if err != nil {
		return time.Time{}, &Issue{Field: "date", Rule: "date", Message: fmt.Sprintf("date %q is not in day/month/year format", coerceString(v))}
	}

	return date, nil
}
