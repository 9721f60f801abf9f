package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups expenses. Its identity is the pair of name and icon.
//
// Categories are shared between all owners.
type Category struct {
	DefaultModel
	Name   string `json:"name" gorm:"index:category_identity" example:"Transport"` // Name of the category, compared case-sensitively
	IconID int    `json:"iconId" gorm:"index:category_identity" example:"3"`       // ID of the icon shown for the category
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	return nil
}

// ResolveCategory returns the category with exactly this name and icon,
// creating it when it does not exist yet.
//
// There is no uniqueness constraint. Two callers resolving the same new
// pair at the same time can both create it, lookups then return the
// oldest one.
func ResolveCategory(db *gorm.DB, name string, iconID int) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, ErrCategoryNameEmpty
	}

	var category Category
	err := db.
		Where("name = ? AND icon_id = ?", name, iconID).
		Order("created_at ASC, id ASC").
		Limit(1).
		Find(&category).
		Error
	if err != nil {
		return Category{}, err
	}

	if category.ID != uuid.Nil {
		return category, nil
	}

	category = Category{Name: name, IconID: iconID}
	err = db.Create(&category).Error
	if err != nil {
		return Category{}, err
	}

	return category, nil
}
