// internal/repository/entry_repository.go
package repository

import (
	"context"
	"time"

	"go_5_habit_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryRepository は Ledger (1習慣・1日1行のエントリ台帳) への永続化を担います。
// 正しさは (user_id, habit_id, entry_date) の複合ユニークインデックスと
// ON CONFLICT upsert に依存します。read-then-write はしません。
type EntryRepository interface {
	// Upsert は同一 (user, habit, day) の行があれば上書き、なければ作成します。
	// entry.EntryDate は呼び出し側で0時に切り詰めておくこと。
	Upsert(ctx context.Context, tx *gorm.DB, entry *model.Entry) error
	// UpsertCompletion は completed フラグだけを upsert します。
	// サブタスク経路の再評価で notes/value を潰さないための別口です。
	UpsertCompletion(ctx context.Context, tx *gorm.DB, entry *model.Entry) error
	// Delete はハード削除です。対象が存在しなかった場合は (false, nil) を返し、
	// エラーにはしません (absent→absent は no-op)。
	Delete(ctx context.Context, tx *gorm.DB, userID, habitID uuid.UUID, day time.Time) (bool, error)
	// FindByDateRange は [from, to] (両端含む) のエントリを日付昇順で返します。
	// habitID が nil の場合は全習慣が対象です。
	FindByDateRange(ctx context.Context, db *gorm.DB, userID uuid.UUID, habitID *uuid.UUID, from, to time.Time) ([]*model.Entry, error)
}

type gormEntryRepository struct{}

func NewGormEntryRepository() EntryRepository {
	return &gormEntryRepository{}
}

func (r *gormEntryRepository) Upsert(ctx context.Context, tx *gorm.DB, entry *model.Entry) error {
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "habit_id"}, {Name: "entry_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "notes", "value", "updated_at"}),
	}).Create(entry)
	return result.Error
}

func (r *gormEntryRepository) UpsertCompletion(ctx context.Context, tx *gorm.DB, entry *model.Entry) error {
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "habit_id"}, {Name: "entry_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "updated_at"}),
	}).Create(entry)
	return result.Error
}

func (r *gormEntryRepository) Delete(ctx context.Context, tx *gorm.DB, userID, habitID uuid.UUID, day time.Time) (bool, error) {
	// 保存値に時刻ノイズが混ざっていても消せるよう、日付は範囲で突き合わせる
	dayStart, dayEnd := dayBounds(day)
	result := tx.WithContext(ctx).
		Where("user_id = ? AND habit_id = ? AND entry_date >= ? AND entry_date < ?", userID, habitID, dayStart, dayEnd).
		Delete(&model.Entry{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *gormEntryRepository) FindByDateRange(ctx context.Context, db *gorm.DB, userID uuid.UUID, habitID *uuid.UUID, from, to time.Time) ([]*model.Entry, error) {
	fromStart, _ := dayBounds(from)
	_, toEnd := dayBounds(to)

	query := db.WithContext(ctx).
		Where("user_id = ? AND entry_date >= ? AND entry_date < ?", userID, fromStart, toEnd)
	if habitID != nil {
		query = query.Where("habit_id = ?", *habitID)
	}

	var entries []*model.Entry
	result := query.Order("entry_date ASC").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}

// dayBounds は日の [0時, 翌0時) の境界を返します
func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}
