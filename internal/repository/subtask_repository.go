// internal/repository/subtask_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"go_5_habit_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubTaskRepository はサブタスク定義と1日分の実績 (outcome) を扱います。
// 実績は集計側が明示的に日付範囲で引く設計で、モデルの遅延ロードには頼りません。
type SubTaskRepository interface {
	CreateDefinition(ctx context.Context, tx *gorm.DB, subTask *model.SubTask) error
	FindDefinition(ctx context.Context, db *gorm.DB, userID, habitID, subTaskID uuid.UUID) (*model.SubTask, error)
	ListDefinitions(ctx context.Context, db *gorm.DB, userID, habitID uuid.UUID) ([]*model.SubTask, error)

	// UpsertOutcome は (user, habit, day, sub_task) でのべき等な書き込みです
	UpsertOutcome(ctx context.Context, tx *gorm.DB, outcome *model.SubTaskOutcome) error
	FindOutcomesByDay(ctx context.Context, db *gorm.DB, userID, habitID uuid.UUID, day time.Time) ([]*model.SubTaskOutcome, error)
	FindOutcomesByDateRange(ctx context.Context, db *gorm.DB, userID uuid.UUID, habitID *uuid.UUID, from, to time.Time) ([]*model.SubTaskOutcome, error)
}

type gormSubTaskRepository struct{}

func NewGormSubTaskRepository() SubTaskRepository {
	return &gormSubTaskRepository{}
}

func (r *gormSubTaskRepository) CreateDefinition(ctx context.Context, tx *gorm.DB, subTask *model.SubTask) error {
	result := tx.WithContext(ctx).Create(subTask)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *gormSubTaskRepository) FindDefinition(ctx context.Context, db *gorm.DB, userID, habitID, subTaskID uuid.UUID) (*model.SubTask, error) {
	var subTask model.SubTask
	result := db.WithContext(ctx).
		Where("user_id = ? AND habit_id = ? AND sub_task_id = ?", userID, habitID, subTaskID).
		First(&subTask)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &subTask, nil
}

func (r *gormSubTaskRepository) ListDefinitions(ctx context.Context, db *gorm.DB, userID, habitID uuid.UUID) ([]*model.SubTask, error) {
	var subTasks []*model.SubTask
	result := db.WithContext(ctx).
		Where("user_id = ? AND habit_id = ?", userID, habitID).
		Order("created_at ASC").
		Find(&subTasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return subTasks, nil
}

func (r *gormSubTaskRepository) UpsertOutcome(ctx context.Context, tx *gorm.DB, outcome *model.SubTaskOutcome) error {
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "habit_id"}, {Name: "entry_date"}, {Name: "sub_task_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "points", "updated_at"}),
	}).Create(outcome)
	return result.Error
}

func (r *gormSubTaskRepository) FindOutcomesByDay(ctx context.Context, db *gorm.DB, userID, habitID uuid.UUID, day time.Time) ([]*model.SubTaskOutcome, error) {
	dayStart, dayEnd := dayBounds(day)
	var outcomes []*model.SubTaskOutcome
	result := db.WithContext(ctx).
		Where("user_id = ? AND habit_id = ? AND entry_date >= ? AND entry_date < ?", userID, habitID, dayStart, dayEnd).
		Find(&outcomes)
	if result.Error != nil {
		return nil, result.Error
	}
	return outcomes, nil
}

func (r *gormSubTaskRepository) FindOutcomesByDateRange(ctx context.Context, db *gorm.DB, userID uuid.UUID, habitID *uuid.UUID, from, to time.Time) ([]*model.SubTaskOutcome, error) {
	fromStart, _ := dayBounds(from)
	_, toEnd := dayBounds(to)

	query := db.WithContext(ctx).
		Where("user_id = ? AND entry_date >= ? AND entry_date < ?", userID, fromStart, toEnd)
	if habitID != nil {
		query = query.Where("habit_id = ?", *habitID)
	}

	var outcomes []*model.SubTaskOutcome
	result := query.Order("entry_date ASC").Find(&outcomes)
	if result.Error != nil {
		return nil, result.Error
	}
	return outcomes, nil
}
