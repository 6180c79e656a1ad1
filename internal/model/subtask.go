// internal/model/subtask.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SubTask は習慣に定義されたサブタスクです (has_sub_tasks=true の習慣のみ)。
type SubTask struct {
	SubTaskID uuid.UUID `gorm:"type:uuid;primaryKey" json:"sub_task_id"`
	HabitID   uuid.UUID `gorm:"type:uuid;not null;index" json:"habit_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SubTask) TableName() string {
	return "sub_tasks"
}

// SubTaskOutcome はサブタスクの1日分の実績です。
// (user_id, habit_id, entry_date, sub_task_id) でユニーク。複数の実績が
// ルール評価を通って1日分の Entry の達成値に畳み込まれます。
type SubTaskOutcome struct {
	OutcomeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"outcome_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_outcome_identity,unique" json:"-"`
	HabitID   uuid.UUID `gorm:"type:uuid;not null;index:idx_outcome_identity,unique" json:"habit_id"`
	EntryDate time.Time `gorm:"not null;index:idx_outcome_identity,unique" json:"entry_date"`
	SubTaskID uuid.UUID `gorm:"type:uuid;not null;index:idx_outcome_identity,unique" json:"sub_task_id"`

	Completed bool    `gorm:"not null;default:false" json:"completed"`
	Points    float64 `gorm:"not null;default:0" json:"points"` // POINTS ルール用 (任意)

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SubTaskOutcome) TableName() string {
	return "sub_task_outcomes"
}

// サブタスク作成リクエストDTO
type PostSubTaskRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// サブタスク実績 upsert リクエストDTO
type UpsertOutcomeRequest struct {
	Completed bool     `json:"completed"`
	Points    *float64 `json:"points,omitempty" validate:"omitempty,gte=0"`
}
