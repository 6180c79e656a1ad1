// internal/repository/habit_repository.go
package repository

import (
	"context"
	"errors"

	"go_5_habit_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HabitRepository interface {
	Create(ctx context.Context, tx *gorm.DB, habit *model.Habit) error
	FindByID(ctx context.Context, db *gorm.DB, userID, habitID uuid.UUID) (*model.Habit, error)
	// ListActive はアーカイブされていない習慣のみ返します (集計の対象集合)
	ListActive(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Habit, error)
	List(ctx context.Context, db *gorm.DB, userID uuid.UUID, includeArchived bool) ([]*model.Habit, error)
	Update(ctx context.Context, tx *gorm.DB, userID, habitID uuid.UUID, updates map[string]interface{}) error
	// Archive はソフト削除です。エントリが参照するため行は消しません。
	Archive(ctx context.Context, tx *gorm.DB, userID, habitID uuid.UUID) error
}

type gormHabitRepository struct{}

func NewGormHabitRepository() HabitRepository {
	return &gormHabitRepository{}
}

func (r *gormHabitRepository) Create(ctx context.Context, tx *gorm.DB, habit *model.Habit) error {
	result := tx.WithContext(ctx).Create(habit)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *gormHabitRepository) FindByID(ctx context.Context, db *gorm.DB, userID, habitID uuid.UUID) (*model.Habit, error) {
	var habit model.Habit
	result := db.WithContext(ctx).Where("user_id = ? AND habit_id = ?", userID, habitID).First(&habit)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &habit, nil
}

func (r *gormHabitRepository) ListActive(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Habit, error) {
	var habits []*model.Habit
	result := db.WithContext(ctx).
		Where("user_id = ? AND archived = ?", userID, false).
		Order("created_at ASC").
		Find(&habits)
	if result.Error != nil {
		return nil, result.Error
	}
	return habits, nil
}

func (r *gormHabitRepository) List(ctx context.Context, db *gorm.DB, userID uuid.UUID, includeArchived bool) ([]*model.Habit, error) {
	if !includeArchived {
		return r.ListActive(ctx, db, userID)
	}
	var habits []*model.Habit
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&habits)
	if result.Error != nil {
		return nil, result.Error
	}
	return habits, nil
}

func (r *gormHabitRepository) Update(ctx context.Context, tx *gorm.DB, userID, habitID uuid.UUID, updates map[string]interface{}) error {
	result := tx.WithContext(ctx).Model(&model.Habit{}).
		Where("user_id = ? AND habit_id = ?", userID, habitID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormHabitRepository) Archive(ctx context.Context, tx *gorm.DB, userID, habitID uuid.UUID) error {
	return r.Update(ctx, tx, userID, habitID, map[string]interface{}{"archived": true})
}
