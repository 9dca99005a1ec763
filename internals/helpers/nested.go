package helper

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReconcileChildren replaces a parent's entire child collection.
//
// rows == nil means the collection key was absent from the request: nothing
// changes. Otherwise every existing child matching parentColumn = parentID is
// deleted and rows are inserted in order. The removed rows are returned so the
// caller can clean up any files they referenced after the transaction commits.
func ReconcileChildren[T any](tx *gorm.DB, parentColumn string, parentID uuid.UUID, rows *[]T) ([]T, error) {
	if rows == nil {
		return nil, nil
	}

	var removed []T
	if err := tx.Where(parentColumn+" = ?", parentID).Find(&removed).Error; err != nil {
		return nil, err
	}
	if err := tx.Where(parentColumn+" = ?", parentID).Delete(new(T)).Error; err != nil {
		return nil, err
	}
	if len(*rows) > 0 {
		if err := tx.Create(rows).Error; err != nil {
			return nil, err
		}
	}
	return removed, nil
}
