// internal/service/overview_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_5_habit_keep/internal/config"
	"go_5_habit_keep/internal/middleware"
	"go_5_habit_keep/internal/model"
	"go_5_habit_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OverviewService は月次・週次サマリのキャッシュを cache-aside で維持します。
// refresh は「現在の Ledger + Habit 状態の純関数 → べき等な upsert」の2段で、
// 下のデータが変わらなければ2回呼んでも保存結果は同一になります。
// キャッシュを丸ごと落としても次の refresh が完全に再構築します。
type OverviewService interface {
	RefreshMonthly(ctx context.Context, userID uuid.UUID, year, month int) (*model.MonthlyOverviewResponse, error)
	RefreshWeekly(ctx context.Context, userID, habitID uuid.UUID, weekStart time.Time) (*model.WeeklyOverviewResponse, error)
}

type overviewService struct {
	db           *gorm.DB
	habitRepo    repository.HabitRepository
	overviewRepo repository.OverviewRepository
	analytics    AnalyticsService
	cfg          *config.Config
}

func NewOverviewService(db *gorm.DB, habitRepo repository.HabitRepository, overviewRepo repository.OverviewRepository, analytics AnalyticsService, cfg *config.Config) OverviewService {
	return &overviewService{
		db:           db,
		habitRepo:    habitRepo,
		overviewRepo: overviewRepo,
		analytics:    analytics,
		cfg:          cfg,
	}
}

func (s *overviewService) RefreshMonthly(ctx context.Context, userID uuid.UUID, year, month int) (*model.MonthlyOverviewResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "year", year, "month", month)

	habits, err := s.habitRepo.ListActive(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list active habits", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "習慣一覧の取得に失敗しました。", "", err)
	}

	// target は各習慣の monthly_target の合計。習慣ゼロなら target=0 で正常。
	target := 0
	for _, h := range habits {
		t := h.MonthlyTarget
		if t <= 0 {
			t = config.DefaultMonthlyTarget
		}
		target += t
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	// completed は日次バケットの合算から導出する (独立再計算はしない)
	daily, err := s.analytics.AggregateRange(ctx, userID, nil, from, to)
	if err != nil {
		logger.Error("Failed to aggregate ledger for monthly overview", "error", err)
		return nil, err
	}
	completed := 0
	for _, b := range daily {
		completed += b.Completed
	}

	left := target - completed
	if left < 0 {
		left = 0
	}
	percentage := roundPercent(float64(completed), float64(target))

	overview := &model.MonthlyOverview{
		MonthlyOverviewID: uuid.New(),
		UserID:            userID,
		Year:              year,
		Month:             month,
		Completed:         completed,
		Target:            target,
		Left:              left,
		Percentage:        percentage,
	}
	if err := s.overviewRepo.UpsertMonthly(ctx, s.db, overview); err != nil {
		logger.Error("Failed to upsert monthly overview", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "月次サマリの保存に失敗しました。", "", err)
	}

	logger.Info("Monthly overview refreshed", "completed", completed, "target", target)
	return &model.MonthlyOverviewResponse{
		Year:       year,
		Month:      month,
		Completed:  completed,
		Target:     target,
		Left:       left,
		Percentage: percentage,
		MonthName:  time.Month(month).String(),
	}, nil
}

func (s *overviewService) RefreshWeekly(ctx context.Context, userID, habitID uuid.UUID, weekStart time.Time) (*model.WeeklyOverviewResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "habit_id", habitID)

	habit, err := s.habitRepo.FindByID(ctx, s.db, userID, habitID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "習慣が見つかりません。", "habit_id", model.ErrNotFound)
		}
		logger.Error("Failed to find habit for weekly overview", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "習慣の取得に失敗しました。", "", err)
	}
	if habit.Archived {
		return nil, model.NewAppError("NOT_FOUND", "習慣が見つかりません。", "habit_id", model.ErrNotFound)
	}

	// 渡された日付がどこを指していても、設定された開始曜日の週頭に揃える
	weekStart = alignWeekStart(weekStart, s.cfg.WeekStartWeekday())
	weekEnd := weekStart.AddDate(0, 0, 6)

	daily, err := s.analytics.AggregateRange(ctx, userID, &habitID, weekStart, weekEnd)
	if err != nil {
		logger.Error("Failed to aggregate ledger for weekly overview", "error", err)
		return nil, err
	}
	completed := 0
	for _, b := range daily {
		completed += b.Completed
	}

	target := habit.WeeklyTarget
	if target <= 0 {
		target = config.DefaultWeeklyTarget
	}
	percentage := roundPercent(float64(completed), float64(target))

	overview := &model.WeeklyOverview{
		WeeklyOverviewID: uuid.New(),
		UserID:           userID,
		HabitID:          habitID,
		WeekStart:        weekStart,
		Completed:        completed,
		Target:           target,
		Percentage:       percentage,
	}
	if err := s.overviewRepo.UpsertWeekly(ctx, s.db, overview); err != nil {
		logger.Error("Failed to upsert weekly overview", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "週次サマリの保存に失敗しました。", "", err)
	}

	logger.Info("Weekly overview refreshed", "week_start", dayKey(weekStart), "completed", completed)
	return &model.WeeklyOverviewResponse{
		HabitID:    habitID,
		WeekStart:  dayKey(weekStart),
		Completed:  completed,
		Target:     target,
		Percentage: percentage,
	}, nil
}
