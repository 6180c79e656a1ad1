// internal/service/analytics_service.go
package service

import (
	"context"
	"time"

	"go_5_habit_keep/internal/config"
	"go_5_habit_keep/internal/middleware"
	"go_5_habit_keep/internal/model"
	"go_5_habit_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalyticsService は Ledger を日次・週次のバケットに畳み込みます。
// 週次・月次の合計は必ず日次バケットの合算から導出し、独立に再計算しません
// (日次と週次・月次の数字が常に一致することを保証するため)。
type AnalyticsService interface {
	// GetMonthlyAnalytics は全習慣スコープの月次ビューです。
	// 週バケットは範囲先頭からの固定位置ウィンドウ (最大5週) です。
	GetMonthlyAnalytics(ctx context.Context, userID uuid.UUID, year, month int) (*model.MonthlyAnalyticsResponse, error)
	// AggregateRange は [from, to] (両端含む) の日次バケット列を返します。
	// habitID が nil なら全アクティブ習慣、指定されていれば単一習慣スコープです。
	// エントリの無い日も必ず total=0 のバケットとして出力されます。
	AggregateRange(ctx context.Context, userID uuid.UUID, habitID *uuid.UUID, from, to time.Time) ([]model.DailyBucket, error)
	// AggregateHabitWeeks は単一習慣スコープで、設定された週の開始曜日に揃えた
	// カレンダー週バケットを返します (範囲に触れる週ごとに1件)。
	AggregateHabitWeeks(ctx context.Context, userID, habitID uuid.UUID, from, to time.Time) ([]model.HabitWeekBucket, error)
}

type analyticsService struct {
	db          *gorm.DB
	habitRepo   repository.HabitRepository
	entryRepo   repository.EntryRepository
	subTaskRepo repository.SubTaskRepository
	cfg         *config.Config
}

func NewAnalyticsService(db *gorm.DB, habitRepo repository.HabitRepository, entryRepo repository.EntryRepository, subTaskRepo repository.SubTaskRepository, cfg *config.Config) AnalyticsService {
	return &analyticsService{
		db:          db,
		habitRepo:   habitRepo,
		entryRepo:   entryRepo,
		subTaskRepo: subTaskRepo,
		cfg:         cfg,
	}
}

func (s *analyticsService) GetMonthlyAnalytics(ctx context.Context, userID uuid.UUID, year, month int) (*model.MonthlyAnalyticsResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "year", year, "month", month)

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1) // 月末日

	daily, err := s.AggregateRange(ctx, userID, nil, from, to)
	if err != nil {
		logger.Error("Failed to aggregate month into daily buckets", "error", err)
		return nil, err
	}

	logger.Info("Monthly analytics computed", "days", len(daily))
	return &model.MonthlyAnalyticsResponse{
		Daily:  daily,
		Weekly: positionalWeeks(daily),
	}, nil
}

func (s *analyticsService) AggregateRange(ctx context.Context, userID uuid.UUID, habitID *uuid.UUID, from, to time.Time) ([]model.DailyBucket, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	from = truncateDay(from)
	to = truncateDay(to)
	if to.Before(from) {
		return nil, model.NewAppError("INVALID_DATE_RANGE", "日付範囲の終端が始端より前です。", "to", model.ErrInvalidInput)
	}

	// 集計の対象集合はアクティブな習慣のみ。アーカイブ済み習慣のエントリは
	// 取得されても落とします。
	habits, err := s.habitRepo.ListActive(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list active habits for aggregation", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "習慣一覧の取得に失敗しました。", "", err)
	}
	habitByID := make(map[uuid.UUID]*model.Habit, len(habits))
	needOutcomes := false
	for _, h := range habits {
		habitByID[h.HabitID] = h
		if h.HasSubTasks {
			needOutcomes = true
		}
	}

	entries, err := s.entryRepo.FindByDateRange(ctx, s.db, userID, habitID, from, to)
	if err != nil {
		logger.Error("Failed to fetch ledger slice", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "記録の取得に失敗しました。", "", err)
	}

	// サブタスク実績は必要なときだけ明示的に範囲で引いて、
	// (habit, day) ごとにまとめておく (クエリ時結合)
	outcomesByKey := map[outcomeKey][]*model.SubTaskOutcome{}
	if needOutcomes {
		outcomes, err := s.subTaskRepo.FindOutcomesByDateRange(ctx, s.db, userID, habitID, from, to)
		if err != nil {
			logger.Error("Failed to fetch sub task outcomes", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サブタスク実績の取得に失敗しました。", "", err)
		}
		for _, o := range outcomes {
			k := outcomeKey{habitID: o.HabitID, day: dayKey(o.EntryDate)}
			outcomesByKey[k] = append(outcomesByKey[k], o)
		}
	}

	// 日単位でエントリを振り分ける。日付の同値判定は (年,月,日) で行い、
	// 保存値に混ざった時刻ノイズの影響を受けないようにする。
	entriesByDay := map[string][]*model.Entry{}
	for _, e := range entries {
		if _, ok := habitByID[e.HabitID]; !ok {
			continue // アーカイブ済み習慣のエントリ
		}
		key := dayKey(e.EntryDate)
		entriesByDay[key] = append(entriesByDay[key], e)
	}

	// 範囲内の全ての日についてバケットを作る (空の日も必ず出力する)
	numDays := int(to.Sub(from).Hours()/24) + 1
	daily := make([]model.DailyBucket, 0, numDays)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := dayKey(day)
		dayEntries := entriesByDay[key]
		completed := 0
		for _, e := range dayEntries {
			habit := habitByID[e.HabitID]
			ok, _ := EvaluateEntry(habit, e, outcomesByKey[outcomeKey{habitID: e.HabitID, day: key}])
			if ok {
				completed++
			}
		}
		total := len(dayEntries)
		daily = append(daily, model.DailyBucket{
			Date:       key,
			Completed:  completed,
			Total:      total,
			Percentage: roundPercent(float64(completed), float64(total)),
		})
	}

	return daily, nil
}

func (s *analyticsService) AggregateHabitWeeks(ctx context.Context, userID, habitID uuid.UUID, from, to time.Time) ([]model.HabitWeekBucket, error) {
	daily, err := s.AggregateRange(ctx, userID, &habitID, from, to)
	if err != nil {
		return nil, err
	}

	weekStartDay := s.cfg.WeekStartWeekday()
	var weeks []model.HabitWeekBucket
	byStart := map[string]int{} // week start key -> index into weeks

	for i, bucket := range daily {
		day := truncateDay(from).AddDate(0, 0, i)
		start := alignWeekStart(day, weekStartDay)
		key := dayKey(start)
		idx, ok := byStart[key]
		if !ok {
			weeks = append(weeks, model.HabitWeekBucket{WeekStart: start})
			idx = len(weeks) - 1
			byStart[key] = idx
		}
		weeks[idx].Completed += bucket.Completed
		weeks[idx].Total += bucket.Total
	}
	for i := range weeks {
		weeks[i].Percentage = roundPercent(float64(weeks[i].Completed), float64(weeks[i].Total))
	}
	return weeks, nil
}

// positionalWeeks は日次バケット列を固定位置の週ウィンドウに畳みます。
// week k (1始まり) は日オフセット [7(k-1), 7k-1] を範囲長でクリップして覆います。
// 週1は曜日に関係なく必ず範囲の先頭から始まります。カレンダー週とはずれますが、
// 互換性のため観測された挙動をそのまま再現しています。
func positionalWeeks(daily []model.DailyBucket) []model.WeeklyBucket {
	numWeeks := (len(daily) + 6) / 7
	if numWeeks > config.MaxAnalyticsWeeks {
		numWeeks = config.MaxAnalyticsWeeks
	}

	weekly := make([]model.WeeklyBucket, 0, numWeeks)
	for k := 1; k <= numWeeks; k++ {
		start := 7 * (k - 1)
		end := 7*k - 1
		if end > len(daily)-1 {
			end = len(daily) - 1
		}
		completed, total := 0, 0
		for i := start; i <= end; i++ {
			completed += daily[i].Completed
			total += daily[i].Total
		}
		weekly = append(weekly, model.WeeklyBucket{
			Week:       k,
			Completed:  completed,
			Total:      total,
			Percentage: roundPercent(float64(completed), float64(total)),
		})
	}
	return weekly
}

type outcomeKey struct {
	habitID uuid.UUID
	day     string
}

// truncateDay は時刻成分を落とし、その日の0時に切り詰めます
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayKey は日付の同値判定・マップキー用の YYYY-MM-DD 表現です
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// alignWeekStart は day を含む週の開始日 (設定された開始曜日) を返します
func alignWeekStart(day time.Time, weekStartWeekday int) time.Time {
	day = truncateDay(day)
	delta := (int(day.Weekday()) - weekStartWeekday + 7) % 7
	return day.AddDate(0, 0, -delta)
}
