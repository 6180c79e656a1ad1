// internal/model/entry.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Entry は1習慣・1日分の記録です。
// (user_id, habit_id, entry_date) の複合ユニークインデックスが正しさの要で、
// 同じ日の二重書き込みは必ず1行に収束します (重複行は許しません)。
// entry_date は記録タイムゾーンの0時に切り詰めた日付として保存します。
type Entry struct {
	EntryID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"entry_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_user_habit_date,unique" json:"-"`
	HabitID   uuid.UUID `gorm:"type:uuid;not null;index:idx_user_habit_date,unique" json:"habit_id"`
	EntryDate time.Time `gorm:"not null;index:idx_user_habit_date,unique" json:"entry_date"`

	Completed bool     `gorm:"not null;default:false" json:"completed"`
	Notes     string   `json:"notes,omitempty"`
	Value     *float64 `json:"value,omitempty"` // 定量的な習慣用 (任意)

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Entry) TableName() string {
	return "entries"
}

// エントリ upsert リクエストDTO (markComplete)
type UpsertEntryRequest struct {
	Notes string   `json:"notes,omitempty" validate:"max=1000"`
	Value *float64 `json:"value,omitempty" validate:"omitempty,gte=0"`
}

// エントリ削除レスポンス (markIncomplete)
// 削除対象が存在しなかった場合も deleted=false で正常応答する
type DeleteEntryResponse struct {
	Deleted bool `json:"deleted"`
}
