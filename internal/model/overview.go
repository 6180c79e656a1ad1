// internal/model/overview.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// WeeklyOverview は (user, habit, week_start) ごとの週次サマリのキャッシュです。
// Ledger (entries) から常に再導出できる派生データで、真実の源ではありません。
type WeeklyOverview struct {
	WeeklyOverviewID uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index:idx_weekly_identity,unique" json:"-"`
	HabitID          uuid.UUID `gorm:"type:uuid;not null;index:idx_weekly_identity,unique" json:"habit_id"`
	WeekStart        time.Time `gorm:"not null;index:idx_weekly_identity,unique" json:"week_start"`

	Completed  int `gorm:"not null;default:0" json:"completed"`
	Target     int `gorm:"not null;default:7" json:"target"`
	Percentage int `gorm:"not null;default:0" json:"percentage"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (WeeklyOverview) TableName() string {
	return "weekly_overviews"
}

// MonthlyOverview は (user, year, month) ごとの月次サマリのキャッシュです。
// completed はその月のアクティブな全習慣の達成エントリ数、target は各習慣の
// monthly_target の合計。リクエストのたびに Ledger から再計算して upsert します
// (cache-aside、時間での無効化はしない)。
type MonthlyOverview struct {
	MonthlyOverviewID uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index:idx_monthly_identity,unique" json:"-"`
	Year              int       `gorm:"not null;index:idx_monthly_identity,unique" json:"year"`
	Month             int       `gorm:"not null;index:idx_monthly_identity,unique" json:"month"`

	Completed  int `gorm:"not null;default:0" json:"completed"`
	Target     int `gorm:"not null;default:0" json:"target"`
	Left       int `gorm:"not null;default:0" json:"left"`
	Percentage int `gorm:"not null;default:0" json:"percentage"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (MonthlyOverview) TableName() string {
	return "monthly_overviews"
}

// MonthlyOverviewResponse は月次オーバービューAPIのレスポンスDTO
type MonthlyOverviewResponse struct {
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Completed  int    `json:"completed"`
	Target     int    `json:"target"`
	Left       int    `json:"left"`
	Percentage int    `json:"percentage"`
	MonthName  string `json:"month_name"`
}

// WeeklyOverviewResponse は週次オーバービューAPIのレスポンスDTO
type WeeklyOverviewResponse struct {
	HabitID    uuid.UUID `json:"habit_id"`
	WeekStart  string    `json:"week_start"` // YYYY-MM-DD
	Completed  int       `json:"completed"`
	Target     int       `json:"target"`
	Percentage int       `json:"percentage"`
}
