// internal/repository/overview_repository.go
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

// OverviewRepository は月次・週次サマリキャッシュの永続化を担います。
// どちらの upsert もユニークインデックス + ON CONFLICT による原子的な書き込みで、
// 同一アイデンティティへの同時 refresh は1行に収束します (スカラー列は後勝ち)。
type OverviewRepository interface {
	UpsertMonthly(ctx context.Context, tx *gorm.DB, overview *model.MonthlyOverview) error
	UpsertWeekly(ctx context.Context, tx *gorm.DB, overview *model.WeeklyOverview) error
	FindMonthly(ctx context.Context, db *gorm.DB, userID uuid.UUID, year, month int) (*model.MonthlyOverview, error)
	FindWeekly(ctx context.Context, db *gorm.DB, userID, habitID uuid.UUID, weekStart time.Time) (*model.WeeklyOverview, error)
}

type gormOverviewRepository struct{}

func NewGormOverviewRepository() OverviewRepository {
	return &gormOverviewRepository{}
}

func (r *gormOverviewRepository) UpsertMonthly(ctx context.Context, tx *gorm.DB, overview *model.MonthlyOverview) error {
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "year"}, {Name: "month"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "target", "left", "percentage", "updated_at"}),
	}).Create(overview)
	return result.Error
}

func (r *gormOverviewRepository) UpsertWeekly(ctx context.Context, tx *gorm.DB, overview *model.WeeklyOverview) error {
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "habit_id"}, {Name: "week_start"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "target", "percentage", "updated_at"}),
	}).Create(overview)
	return result.Error
}

func (r *gormOverviewRepository) FindMonthly(ctx context.Context, db *gorm.DB, userID uuid.UUID, year, month int) (*model.MonthlyOverview, error) {
	var overview model.MonthlyOverview
	result := db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ?", userID, year, month).
		First(&overview)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &overview, nil
}

func (r *gormOverviewRepository) FindWeekly(ctx context.Context, db *gorm.DB, userID, habitID uuid.UUID, weekStart time.Time) (*model.WeeklyOverview, error) {
	dayStart, dayEnd := dayBounds(weekStart)
	var overview model.WeeklyOverview
	result := db.WithContext(ctx).
		Where("user_id = ? AND habit_id = ? AND week_start >= ? AND week_start < ?", userID, habitID, dayStart, dayEnd).
		First(&overview)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &overview, nil
}
