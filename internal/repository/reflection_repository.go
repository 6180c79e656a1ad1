// internal/repository/reflection_repository.go
package repository

import (
	"context"
	"errors"

	"go_5_habit_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReflectionRepository interface {
	// Upsert は (user, year, month) でのべき等な書き込みです
	Upsert(ctx context.Context, tx *gorm.DB, reflection *model.Reflection) error
	Find(ctx context.Context, db *gorm.DB, userID uuid.UUID, year, month int) (*model.Reflection, error)
}

type gormReflectionRepository struct{}

func NewGormReflectionRepository() ReflectionRepository {
	return &gormReflectionRepository{}
}

func (r *gormReflectionRepository) Upsert(ctx context.Context, tx *gorm.DB, reflection *model.Reflection) error {
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "year"}, {Name: "month"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"body", "context", "updated_at"}),
	}).Create(reflection)
	return result.Error
}

func (r *gormReflectionRepository) Find(ctx context.Context, db *gorm.DB, userID uuid.UUID, year, month int) (*model.Reflection, error) {
	var reflection model.Reflection
	result := db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ?", userID, year, month).
		First(&reflection)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &reflection, nil
}
