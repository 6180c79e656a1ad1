// internal/model/habit.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProgressRule は、サブタスクを持つ習慣の1日分の達成判定ルールです。
type ProgressRule string

const (
	RuleAll        ProgressRule = "ALL"        // 全サブタスク完了で達成
	RulePercentage ProgressRule = "PERCENTAGE" // 完了率が閾値以上で達成
	RulePoints     ProgressRule = "POINTS"     // 獲得ポイント率が閾値以上で達成
)

// Valid はルール値が既知のものか判定します
func (r ProgressRule) Valid() bool {
	switch r {
	case RuleAll, RulePercentage, RulePoints:
		return true
	}
	return false
}

// Habit はユーザーの習慣を表します。
// アーカイブは archived フラグによるソフト削除で、エントリが参照している限り
// 行そのものは削除しません (集計対象から外れるだけ)。
type Habit struct {
	HabitID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"habit_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	Emoji     string    `json:"emoji"`
	Color     string    `json:"color"`
	Frequency string    `gorm:"not null;default:daily" json:"frequency"`

	WeeklyTarget  int  `gorm:"not null;default:7" json:"weekly_target"`
	MonthlyTarget int  `gorm:"not null;default:30" json:"monthly_target"`
	Archived      bool `gorm:"not null;default:false;index" json:"archived"`

	// 達成判定の設定
	HasSubTasks         bool         `gorm:"not null;default:false" json:"has_sub_tasks"`
	ProgressRule        ProgressRule `gorm:"not null;default:ALL" json:"progress_rule"`
	CompletionThreshold int          `gorm:"not null;default:100" json:"completion_threshold"` // PERCENTAGE/POINTS でのみ意味を持つ

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Habit) TableName() string {
	return "habits"
}

// 習慣作成リクエストDTO
type PostHabitRequest struct {
	Name                string  `json:"name" validate:"required,min=1,max=100"`
	Emoji               string  `json:"emoji" validate:"max=16"`
	Color               string  `json:"color" validate:"max=32"`
	Frequency           string  `json:"frequency" validate:"omitempty,oneof=daily weekly"`
	WeeklyTarget        *int    `json:"weekly_target,omitempty" validate:"omitempty,min=1,max=7"`
	MonthlyTarget       *int    `json:"monthly_target,omitempty" validate:"omitempty,min=1,max=31"`
	HasSubTasks         bool    `json:"has_sub_tasks"`
	ProgressRule        *string `json:"progress_rule,omitempty" validate:"omitempty,oneof=ALL PERCENTAGE POINTS"`
	CompletionThreshold *int    `json:"completion_threshold,omitempty" validate:"omitempty,min=1,max=100"`
}

// 習慣更新（部分）リクエストDTO
type PatchHabitRequest struct {
	Name                *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Emoji               *string `json:"emoji,omitempty" validate:"omitempty,max=16"`
	Color               *string `json:"color,omitempty" validate:"omitempty,max=32"`
	Frequency           *string `json:"frequency,omitempty" validate:"omitempty,oneof=daily weekly"`
	WeeklyTarget        *int    `json:"weekly_target,omitempty" validate:"omitempty,min=1,max=7"`
	MonthlyTarget       *int    `json:"monthly_target,omitempty" validate:"omitempty,min=1,max=31"`
	HasSubTasks         *bool   `json:"has_sub_tasks,omitempty"`
	ProgressRule        *string `json:"progress_rule,omitempty" validate:"omitempty,oneof=ALL PERCENTAGE POINTS"`
	CompletionThreshold *int    `json:"completion_threshold,omitempty" validate:"omitempty,min=1,max=100"`
}
