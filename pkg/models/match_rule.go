package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRule assigns a category to imported rows whose description
// matches the glob in Match.
type MatchRule struct {
	DefaultModel
	OwnerID  uuid.UUID `json:"ownerId" gorm:"index"`
	Owner    User      `json:"-"`
	Priority uint      `json:"priority" example:"3"`        // Rules with lower values are applied first
	Match    string    `json:"match" example:"*Uber*"`      // Glob matched against the row description
	Category string    `json:"category" example:"Transport"` // Category assigned on match
}

func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	r.Category = strings.TrimSpace(r.Category)

	if r.Match == "" {
		return ErrMatchRuleEmpty
	}

	if r.OwnerID == uuid.Nil {
		return ErrOwnerMissing
	}

	return nil
}

// MatchRulesFor returns the match rules of an owner in the order they are applied.
func MatchRulesFor(db *gorm.DB, ownerID uuid.UUID) ([]MatchRule, error) {
	var rules []MatchRule

	err := db.
		Where(&MatchRule{OwnerID: ownerID}).
		Order("priority ASC, created_at ASC").
		Find(&rules).
		Error
	if err != nil {
		return nil, err
	}

	return rules, nil
}
