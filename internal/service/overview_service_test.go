// internal/service/overview_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"go_5_habit_keep/internal/config"
	"go_5_habit_keep/internal/model"
	"go_5_habit_keep/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOverviewForTest(db *gorm.DB) OverviewService {
	cfg := &config.Config{}
	cfg.App.WeekStart = "monday"
	habitRepo := repository.NewGormHabitRepository()
	entryRepo := repository.NewGormEntryRepository()
	subTaskRepo := repository.NewGormSubTaskRepository()
	analytics := NewAnalyticsService(db, habitRepo, entryRepo, subTaskRepo, cfg)
	return NewOverviewService(db, habitRepo, repository.NewGormOverviewRepository(), analytics, cfg)
}

func Test_overviewService_RefreshMonthly(t *testing.T) {
	ctx := context.Background()
	db := setupLedgerDB(t)
	svc := newOverviewForTest(db)
	userID := uuid.New()

	// monthly_target 20 + 30 の2習慣、合計 target=50
	h1 := &model.Habit{UserID: userID, Name: "読書", MonthlyTarget: 20}
	h2 := &model.Habit{UserID: userID, Name: "散歩", MonthlyTarget: 30}
	seedHabit(t, db, h1)
	seedHabit(t, db, h2)

	// 3月中に合計25件の達成エントリを作る (h1:15, h2:10)
	for d := 1; d <= 15; d++ {
		seedEntry(t, db, userID, h1.HabitID, day(2026, 3, d), true)
	}
	for d := 1; d <= 10; d++ {
		seedEntry(t, db, userID, h2.HabitID, day(2026, 3, d), true)
	}

	resp, err := svc.RefreshMonthly(ctx, userID, 2026, 3)
	require.NoError(t, err)

	assert.Equal(t, 2026, resp.Year)
	assert.Equal(t, 3, resp.Month)
	assert.Equal(t, 25, resp.Completed)
	assert.Equal(t, 50, resp.Target)
	assert.Equal(t, 25, resp.Left)
	assert.Equal(t, 50, resp.Percentage)
	assert.Equal(t, "March", resp.MonthName)
}

func Test_overviewService_RefreshMonthly_NoHabits(t *testing.T) {
	ctx := context.Background()
	db := setupLedgerDB(t)
	svc := newOverviewForTest(db)
	userID := uuid.New()

	// 習慣ゼロのユーザーでもエラーにならず target=0 / percentage=0 で返る
	resp, err := svc.RefreshMonthly(ctx, userID, 2026, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Completed)
	assert.Equal(t, 0, resp.Target)
	assert.Equal(t, 0, resp.Left)
	assert.Equal(t, 0, resp.Percentage)
}

func Test_overviewService_RefreshMonthly_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := setupLedgerDB(t)
	svc := newOverviewForTest(db)
	userID := uuid.New()

	h := &model.Habit{UserID: userID, Name: "読書", MonthlyTarget: 10}
	seedHabit(t, db, h)
	seedEntry(t, db, userID, h.HabitID, day(2026, 5, 1), true)

	first, err := svc.RefreshMonthly(ctx, userID, 2026, 5)
	require.NoError(t, err)
	second, err := svc.RefreshMonthly(ctx, userID, 2026, 5)
	require.NoError(t, err)

	// 下のデータが変わらなければ2回呼んでも結果は同一
	assert.Equal(t, first, second)

	// キャッシュ行も (user, year, month) で1行に収束している
	var count int64
	require.NoError(t, db.Model(&model.MonthlyOverview{}).
		Where("user_id = ? AND year = ? AND month = ?", userID, 2026, 5).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func Test_overviewService_RefreshWeekly(t *testing.T) {
	ctx := context.Background()
	db := setupLedgerDB(t)
	svc := newOverviewForTest(db)
	userID := uuid.New()

	h := &model.Habit{UserID: userID, Name: "筋トレ", WeeklyTarget: 4}
	seedHabit(t, db, h)

	// 2026-03-02 (月) 始まりの週に3件達成
	for _, d := range []int{2, 4, 6} {
		seedEntry(t, db, userID, h.HabitID, day(2026, 3, d), true)
	}

	// 週の途中の日付を渡しても週頭に揃えて同じ週を指す
	resp, err := svc.RefreshWeekly(ctx, userID, h.HabitID, day(2026, 3, 5))
	require.NoError(t, err)

	assert.Equal(t, h.HabitID, resp.HabitID)
	assert.Equal(t, "2026-03-02", resp.WeekStart)
	assert.Equal(t, 3, resp.Completed)
	assert.Equal(t, 4, resp.Target)
	assert.Equal(t, 75, resp.Percentage)

	// 再実行でもキャッシュ行は1行のまま
	_, err = svc.RefreshWeekly(ctx, userID, h.HabitID, day(2026, 3, 2))
	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(&model.WeeklyOverview{}).
		Where("user_id = ? AND habit_id = ?", userID, h.HabitID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func Test_overviewService_RefreshWeekly_NotFound(t *testing.T) {
	ctx := context.Background()
	db := setupLedgerDB(t)
	svc := newOverviewForTest(db)
	userID := uuid.New()

	tests := []struct {
		name  string
		habit *model.Habit
	}{
		{name: "異常系: 存在しない習慣"},
		{
			name:  "異常系: アーカイブ済み習慣はNotFound扱い",
			habit: &model.Habit{UserID: userID, Name: "旧習慣", Archived: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			habitID := uuid.New()
			if tt.habit != nil {
				seedHabit(t, db, tt.habit)
				habitID = tt.habit.HabitID
			}
			_, err := svc.RefreshWeekly(ctx, userID, habitID, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrNotFound)
		})
	}
}
