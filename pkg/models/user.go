package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is the owner of expenses, incomes, budgets and reports.
//
// Users are managed by the authentication layer, the engine only
// verifies that they exist.
type User struct {
	DefaultModel
	Name string `json:"name" example:"Alice"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	return nil
}
