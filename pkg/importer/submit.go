package importer

import (
	"fmt"
	"strings"

	"github.com/envelope-zero/tracker/internal/types"
	"github.com/envelope-zero/tracker/pkg/importer/helpers"
	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// batchSize is the number of expenses inserted per statement.
const batchSize = 100

// Submit stores accepted rows as expenses of the owner in a single transaction.
//
// All expenses are tagged with the file name they were imported from.
// Rows are validated again, submitting a row that does not pass validation
// aborts the whole submission.
func Submit(db *gorm.DB, ownerID uuid.UUID, fileName string, rows []Row) ([]models.Expense, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, ErrImportFileName
	}

	for i, row := range rows {
		if issues := row.Validate(); len(issues) > 0 {
			return nil, fmt.Errorf("%w: row %d: %s", ErrRowInvalid, i+1, issues[0].Message)
		}
	}

	expenses := make([]models.Expense, 0, len(rows))

	err := db.Transaction(func(tx *gorm.DB) error {
		var owner models.User
		err := tx.Where("id = ?", ownerID).First(&owner).Error
		if err != nil {
			return err
		}

		categories := make(map[string]uuid.UUID)
		for _, row := range rows {
			categoryID, ok := categories[row.Category]
			if !ok {
				iconID, _ := FixedCategoryIcon(row.Category)
				category, err := models.ResolveCategory(tx, row.Category, iconID)
				if err != nil {
					return err
				}
				categoryID = category.ID
				categories[row.Category] = categoryID
			}

			expenses = append(expenses, models.Expense{
				OwnerID:         ownerID,
				Description:     row.Description,
				Amount:          row.Amount,
				TransactionDate: row.Date,
				CategoryID:      categoryID,
				ImageURL:        row.Image,
				ImportFile:      fileName,
				ImportHash:      helpers.RowHash(row.Description, row.Amount.String(), row.Date.Format(types.DateLayout), row.Category),
			})
		}

		if len(expenses) == 0 {
			return nil
		}

		return tx.Omit(clause.Associations).CreateInBatches(&expenses, batchSize).Error
	})
	if err != nil {
		return nil, err
	}

	return expenses, nil
}
