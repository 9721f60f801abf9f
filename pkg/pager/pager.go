// Package pager lists expenses, incomes and reports page by page or by search.
package pager

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

var (
	ErrInvalidCursor = errors.New("the cursor is not valid")
	ErrInvalidLimit  = fmt.Errorf("the limit must be between 1 and %d", MaxLimit)
)

// Query selects a page.
//
// When Search is set, the first Limit records containing it are returned
// and Cursor is ignored.
type Query struct {
	OwnerID uuid.UUID
	Limit   int    // Defaults to DefaultLimit when 0
	Cursor  string // ID of the first record of the page
	Search  string
}

// Page is a list of records and the cursor for the next page.
type Page[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"nextCursor" example:"a8fd7a63-5b5b-4c36-8d2f-c2f3f4ee1d09"` // ID of the first record of the next page, null on the last page
}

type record interface {
	PageKey() (time.Time, uuid.UUID)
}

// source describes how records of one table are sorted and searched.
type source struct {
	table         string
	dateColumn    string
	searchColumns []string
}

var (
	expenses = source{table: "expenses", dateColumn: "transaction_date", searchColumns: []string{"description"}}
	incomes  = source{table: "incomes", dateColumn: "transaction_date", searchColumns: []string{"title", "description"}}
	reports  = source{table: "reports", dateColumn: "created_at", searchColumns: []string{"file_name"}}
)

// Expenses returns a page of the owner's expenses, newest first.
func Expenses(db *gorm.DB, q Query) (Page[models.Expense], error) {
	return paginate[models.Expense](db, q, expenses)
}

// Incomes returns a page of the owner's incomes, newest first.
func Incomes(db *gorm.DB, q Query) (Page[models.Income], error) {
	return paginate[models.Income](db, q, incomes)
}

// Reports returns a page of the owner's reports, newest first.
func Reports(db *gorm.DB, q Query) (Page[models.Report], error) {
	return paginate[models.Report](db, q, reports)
}

func (q Query) limit() (int, error) {
	if q.Limit == 0 {
		return DefaultLimit, nil
	}

	if q.Limit < 0 || q.Limit > MaxLimit {
		return 0, ErrInvalidLimit
	}

	return q.Limit, nil
}

func (s source) column(name string) string {
	return fmt.Sprintf("%s.%s", s.table, name)
}

func (s source) order() string {
	return fmt.Sprintf("%s DESC, %s DESC", s.column(s.dateColumn), s.column("id"))
}

func paginate[T record](db *gorm.DB, q Query, s source) (Page[T], error) {
	limit, err := q.limit()
	if err != nil {
		return Page[T]{}, err
	}

	query := db.Where(s.column("owner_id")+" = ?", q.OwnerID)

	if search := strings.TrimSpace(q.Search); search != "" {
		return searchPage[T](query, s, search, limit)
	}

	if q.Cursor != "" {
		id, err := uuid.Parse(q.Cursor)
		if err != nil {
			return Page[T]{}, fmt.Errorf("%w: %s", ErrInvalidCursor, err)
		}

		var cursor T
		err = db.
			Where(s.column("owner_id")+" = ?", q.OwnerID).
			Where(s.column("id")+" = ?", id).
			First(&cursor).
			Error
		if err != nil {
			return Page[T]{}, err
		}

		date, cursorID := cursor.PageKey()
		query = query.Where(
			fmt.Sprintf("(%[1]s < ? OR (%[1]s = ? AND %[2]s <= ?))", s.column(s.dateColumn), s.column("id")),
			date, date, cursorID,
		)
	}

	var items []T
	err = query.Order(s.order()).Limit(limit + 1).Find(&items).Error
	if err != nil {
		return Page[T]{}, err
	}

	page := Page[T]{Items: items}
	if len(items) > limit {
		_, id := items[limit].PageKey()
		next := id.String()

		page.Items = items[:limit]
		page.NextCursor = &next
	}

	if page.Items == nil {
		page.Items = []T{}
	}

	return page, nil
}

// searchPage returns up to limit records where one of the search columns
// contains the search string, ignoring case.
func searchPage[T record](query *gorm.DB, s source, search string, limit int) (Page[T], error) {
	pattern := "%" + escapeLike(strings.ToLower(search)) + "%"

	conditions := make([]string, 0, len(s.searchColumns))
	args := make([]any, 0, len(s.searchColumns))
	for _, c := range s.searchColumns {
		conditions = append(conditions, fmt.Sprintf("%s(%s) LIKE ? ESCAPE '\\'", models.LowerFunc, s.column(c)))
		args = append(args, pattern)
	}

	var items []T
	err := query.
		Where("("+strings.Join(conditions, " OR ")+")", args...).
		Order(s.order()).
		Limit(limit).
		Find(&items).
		Error
	if err != nil {
		return Page[T]{}, err
	}

	if items == nil {
		items = []T{}
	}

	return Page[T]{Items: items}, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
