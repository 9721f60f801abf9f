package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors.
var (
	ErrBudgetDateRange   = errors.New("the start date of a budget must not be after its end date")
	ErrAmountNegative    = errors.New("the amount must not be negative")
	ErrCategoryNameEmpty = errors.New("the category name must not be empty")
	ErrOwnerMissing      = errors.New("the owner ID must be set")
	ErrMatchRuleEmpty    = errors.New("the match of a match rule must not be empty")
)
