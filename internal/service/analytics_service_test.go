// internal/service/analytics_service_test.go
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
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupLedgerDB は集計テスト用に実テーブルを持つインメモリDBを用意します。
// モックではなく実リポジトリを使い、取得からルール評価までを通しで検証する。
func setupLedgerDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Habit{}, &model.Entry{}, &model.SubTask{}, &model.SubTaskOutcome{},
		&model.WeeklyOverview{}, &model.MonthlyOverview{},
	))
	return db
}

func newAnalyticsForTest(db *gorm.DB) AnalyticsService {
	cfg := &config.Config{}
	cfg.App.WeekStart = "monday"
	return NewAnalyticsService(
		db,
		repository.NewGormHabitRepository(),
		repository.NewGormEntryRepository(),
		repository.NewGormSubTaskRepository(),
		cfg,
	)
}

// seedHabit は習慣1件を直接INSERTするテストヘルパー
func seedHabit(t *testing.T, db *gorm.DB, habit *model.Habit) {
	t.Helper()
	if habit.HabitID == uuid.Nil {
		habit.HabitID = uuid.New()
	}
	if habit.Frequency == "" {
		habit.Frequency = "daily"
	}
	if habit.ProgressRule == "" {
		habit.ProgressRule = model.RuleAll
	}
	if habit.CompletionThreshold == 0 {
		habit.CompletionThreshold = 100
	}
	require.NoError(t, db.Create(habit).Error)
}

func seedEntry(t *testing.T, db *gorm.DB, userID, habitID uuid.UUID, day time.Time, completed bool) {
	t.Helper()
	require.NoError(t, db.Create(&model.Entry{
		EntryID:   uuid.New(),
		UserID:    userID,
		HabitID:   habitID,
		EntryDate: day,
		Completed: completed,
	}).Error)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Test_analyticsService_AggregateRange_ZeroFill(t *testing.T) {
	ctx := context.Background()
	db := setupLedgerDB(t)
	svc := newAnalyticsForTest(db)
	userID := uuid.New()

	habit := &model.Habit{UserID: userID, Name: "読書"}
	seedHabit(t, db, habit)

	// 3日分の範囲のうち、真ん中の日だけ記録がある
	seedEntry(t, db, userID, habit.HabitID, day(2026, 3, 2), true)

	daily, err := svc.AggregateRange(ctx, userID, nil, day(2026, 3, 1), day(2026, 3, 3))
	require.NoError(t, err)
	require.Len(t, daily, 3) // 空の日も飛ばさない

	assert.Equal(t, model.DailyBucket{Date: "2026-03-01", Completed: 0, Total: 0, Percentage: 0}, daily[0])
	assert.Equal(t, model.DailyBucket{Date: "2026-03-02", Completed: 1, Total: 1, Percentage: 100}, daily[1])
	assert.Equal(t, model.DailyBucket{Date: "2026-03-03", Completed: 0, Total: 0, Percentage: 0}, daily[2])
}

func Test_analyticsService_AggregateRange_InvalidRange(t *testing.T) {
	ctx := context.Background()
	db := setupLedgerDB(t)
	svc := newAnalyticsForTest(db)

	_, err := svc.AggregateRange(ctx, uuid.New(), nil, day(2026, 3, 10), day(2026, 3, 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func Test_analyticsService_AggregateRange_ExcludesArchived(t *testing.T) {
	ctx := context.Background()
	db := setupLedgerDB(t)
	svc := newAnalyticsForTest(db)
	userID := uuid.New()

	active := &model.Habit{UserID: userID, Name: "散歩"}
	archived := &model.Habit{UserID: userID, Name: "旧習慣", Archived: true}
	seedHabit(t, db, active)
	seedHabit(t, db, archived)

	d := day(2026, 3, 5)
	seedEntry(t, db, userID, active.HabitID, d, true)
	// アーカイブ済み習慣のエントリは行として残っているが集計から落ちる
	seedEntry(t, db, userID, archived.HabitID, d, true)

	daily, err := svc.AggregateRange(ctx, userID, nil, d, d)
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, 1, daily[0].Completed)
	assert.Equal(t, 1, daily[0].Total)
}

func Test_analyticsService_AggregateRange_SubTaskRule(t *testing.T) {
	ctx := context.Background()
	db := setupLedgerDB(t)
	svc := newAnalyticsForTest(db)
	userID := uuid.New()

	// 閾値70のPERCENTAGEルール: 4件中3件完了 (75%) は達成扱いになるはず
	habit := &model.Habit{
		UserID:              userID,
		Name:                "朝のルーティン",
		HasSubTasks:         true,
		ProgressRule:        model.RulePercentage,
		CompletionThreshold: 70,
	}
	seedHabit(t, db, habit)

	d := day(2026, 3, 10)
	// エントリ自体のフラグは false のまま (評価器が上書き判定する)
	seedEntry(t, db, userID, habit.HabitID, d, false)
	for _, done := range []bool{true, true, true, false} {
		require.NoError(t, db.Create(&model.SubTaskOutcome{
			OutcomeID: uuid.New(),
			UserID:    userID,
			HabitID:   habit.HabitID,
			EntryDate: d,
			SubTaskID: uuid.New(),
			Completed: done,
		}).Error)
	}

	daily, err := svc.AggregateRange(ctx, userID, nil, d, d)
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, 1, daily[0].Completed, "完了率75は閾値70以上なので達成のはず")
}

func Test_analyticsService_GetMonthlyAnalytics_Weekly(t *testing.T) {
	ctx := context.Background()
	db := setupLedgerDB(t)
	svc := newAnalyticsForTest(db)
	userID := uuid.New()

	habit := &model.Habit{UserID: userID, Name: "読書"}
	seedHabit(t, db, habit)

	// 2026年3月の最初の7日を全て達成
	for d := 1; d <= 7; d++ {
		seedEntry(t, db, userID, habit.HabitID, day(2026, 3, d), true)
	}

	resp, err := svc.GetMonthlyAnalytics(ctx, userID, 2026, 3)
	require.NoError(t, err)
	require.Len(t, resp.Daily, 31)

	// 週バケットは曜日に関係なく範囲先頭からの固定ウィンドウで、最大5週
	require.Len(t, resp.Weekly, 5)
	assert.Equal(t, model.WeeklyBucket{Week: 1, Completed: 7, Total: 7, Percentage: 100}, resp.Weekly[0])
	for _, w := range resp.Weekly[1:] {
		assert.Zero(t, w.Completed)
		assert.Zero(t, w.Total)
		assert.Zero(t, w.Percentage)
	}

	// 日次と週次の合計は一致する
	dailySum := 0
	for _, b := range resp.Daily {
		dailySum += b.Completed
	}
	weeklySum := 0
	for _, w := range resp.Weekly {
		weeklySum += w.Completed
	}
	assert.Equal(t, dailySum, weeklySum)
}

func Test_positionalWeeks_Clipping(t *testing.T) {
	// 10日分 → 週1が7日・週2が残り3日を覆う
	daily := make([]model.DailyBucket, 10)
	for i := range daily {
		daily[i] = model.DailyBucket{Completed: 1, Total: 1, Percentage: 100}
	}
	weekly := positionalWeeks(daily)
	require.Len(t, weekly, 2)
	assert.Equal(t, 7, weekly[0].Total)
	assert.Equal(t, 3, weekly[1].Total)
}

func Test_analyticsService_AggregateHabitWeeks(t *testing.T) {
	ctx := context.Background()
	db := setupLedgerDB(t)
	svc := newAnalyticsForTest(db)
	userID := uuid.New()

	habit := &model.Habit{UserID: userID, Name: "散歩"}
	seedHabit(t, db, habit)

	// 2026-03-04 は水曜。月曜開始の設定なら 03-02 始まりの週に落ちる
	seedEntry(t, db, userID, habit.HabitID, day(2026, 3, 4), true)

	weeks, err := svc.AggregateHabitWeeks(ctx, userID, habit.HabitID, day(2026, 3, 2), day(2026, 3, 15))
	require.NoError(t, err)
	require.Len(t, weeks, 2)

	assert.Equal(t, day(2026, 3, 2), weeks[0].WeekStart)
	assert.Equal(t, 1, weeks[0].Completed)
	assert.Equal(t, day(2026, 3, 9), weeks[1].WeekStart)
	assert.Equal(t, 0, weeks[1].Completed)
}
