// internal/service/entry_service_test.go
package service

import (
	"context"
	"testing"

	"go_5_habit_keep/internal/model"
	"go_5_habit_keep/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newEntryForTest(db *gorm.DB) EntryService {
	return NewEntryService(
		db,
		repository.NewGormHabitRepository(),
		repository.NewGormEntryRepository(),
		repository.NewGormSubTaskRepository(),
	)
}

func Test_entryService_MarkComplete(t *testing.T) {
	ctx := context.Background()
	db := setupLedgerDB(t)
	svc := newEntryForTest(db)
	userID := uuid.New()

	habit := &model.Habit{UserID: userID, Name: "読書"}
	seedHabit(t, db, habit)

	d := day(2026, 3, 10)
	entry, err := svc.MarkComplete(ctx, userID, habit.HabitID, d, &model.UpsertEntryRequest{Notes: "30分読んだ"})
	require.NoError(t, err)
	assert.True(t, entry.Completed)
	assert.Equal(t, "30分読んだ", entry.Notes)

	// 同じ日にもう一度マークしても行は増えない (べき等 upsert)
	_, err = svc.MarkComplete(ctx, userID, habit.HabitID, d, &model.UpsertEntryRequest{Notes: "上書き"})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Entry{}).
		Where("user_id = ? AND habit_id = ?", userID, habit.HabitID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var saved model.Entry
	require.NoError(t, db.Where("user_id = ? AND habit_id = ?", userID, habit.HabitID).First(&saved).Error)
	assert.Equal(t, "上書き", saved.Notes) // スカラー列は後勝ち
}

func Test_entryService_MarkComplete_HabitNotFound(t *testing.T) {
	ctx := context.Background()
	db := setupLedgerDB(t)
	svc := newEntryForTest(db)
	userID := uuid.New()

	tests := []struct {
		name  string
		habit *model.Habit
	}{
		{name: "異常系: 存在しない習慣"},
		{
			name:  "異常系: アーカイブ済み習慣には書き込めない",
			habit: &model.Habit{UserID: userID, Name: "旧習慣", Archived: true},
		},
		{
			name:  "異常系: 他ユーザーの習慣は見えない",
			habit: &model.Habit{UserID: uuid.New(), Name: "他人の習慣"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			habitID := uuid.New()
			if tt.habit != nil {
				seedHabit(t, db, tt.habit)
				habitID = tt.habit.HabitID
			}
			_, err := svc.MarkComplete(ctx, userID, habitID, day(2026, 3, 10), &model.UpsertEntryRequest{})
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrNotFound)
		})
	}
}

func Test_entryService_MarkIncomplete(t *testing.T) {
	ctx := context.Background()
	db := setupLedgerDB(t)
	svc := newEntryForTest(db)
	userID := uuid.New()

	habit := &model.Habit{UserID: userID, Name: "散歩"}
	seedHabit(t, db, habit)

	d := day(2026, 3, 11)
	_, err := svc.MarkComplete(ctx, userID, habit.HabitID, d, &model.UpsertEntryRequest{})
	require.NoError(t, err)

	// present → absent はハード削除
	deleted, err := svc.MarkIncomplete(ctx, userID, habit.HabitID, d)
	require.NoError(t, err)
	assert.True(t, deleted)

	var count int64
	require.NoError(t, db.Model(&model.Entry{}).
		Where("user_id = ? AND habit_id = ?", userID, habit.HabitID).
		Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// absent → absent は no-op で deleted=false (エラーにしない)
	deleted, err = svc.MarkIncomplete(ctx, userID, habit.HabitID, d)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func Test_entryService_ListEntries(t *testing.T) {
	ctx := context.Background()
	db := setupLedgerDB(t)
	svc := newEntryForTest(db)
	userID := uuid.New()

	habit := &model.Habit{UserID: userID, Name: "読書"}
	seedHabit(t, db, habit)

	seedEntry(t, db, userID, habit.HabitID, day(2026, 3, 1), true)
	seedEntry(t, db, userID, habit.HabitID, day(2026, 3, 5), true)
	seedEntry(t, db, userID, habit.HabitID, day(2026, 3, 20), true) // 範囲外

	entries, err := svc.ListEntries(ctx, userID, habit.HabitID, day(2026, 3, 1), day(2026, 3, 10))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// 日付昇順で返る
	assert.Equal(t, day(2026, 3, 1), entries[0].EntryDate.UTC())
	assert.Equal(t, day(2026, 3, 5), entries[1].EntryDate.UTC())
}

func Test_entryService_CreateSubTask(t *testing.T) {
	ctx := context.Background()
	db := setupLedgerDB(t)
	svc := newEntryForTest(db)
	userID := uuid.New()

	withSub := &model.Habit{UserID: userID, Name: "朝のルーティン", HasSubTasks: true}
	withoutSub := &model.Habit{UserID: userID, Name: "読書"}
	seedHabit(t, db, withSub)
	seedHabit(t, db, withoutSub)

	subTask, err := svc.CreateSubTask(ctx, userID, withSub.HabitID, &model.PostSubTaskRequest{Name: "白湯を飲む"})
	require.NoError(t, err)
	assert.Equal(t, "白湯を飲む", subTask.Name)
	assert.Equal(t, withSub.HabitID, subTask.HabitID)

	// サブタスクを持たない習慣には定義できない
	_, err = svc.CreateSubTask(ctx, userID, withoutSub.HabitID, &model.PostSubTaskRequest{Name: "白湯を飲む"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SUB_TASKS_DISABLED", appErr.Detail.Code)
}

func Test_entryService_UpsertOutcome_ReevaluatesEntry(t *testing.T) {
	ctx := context.Background()
	db := setupLedgerDB(t)
	svc := newEntryForTest(db)
	userID := uuid.New()

	habit := &model.Habit{
		UserID:              userID,
		Name:                "朝のルーティン",
		HasSubTasks:         true,
		ProgressRule:        model.RulePercentage,
		CompletionThreshold: 50,
	}
	seedHabit(t, db, habit)

	st1, err := svc.CreateSubTask(ctx, userID, habit.HabitID, &model.PostSubTaskRequest{Name: "白湯を飲む"})
	require.NoError(t, err)
	st2, err := svc.CreateSubTask(ctx, userID, habit.HabitID, &model.PostSubTaskRequest{Name: "ストレッチ"})
	require.NoError(t, err)

	d := day(2026, 3, 12)

	// 1件目の実績だけ完了 → 50% >= 50 で達成に転じる
	entry, err := svc.UpsertOutcome(ctx, userID, habit.HabitID, st1.SubTaskID, d, &model.UpsertOutcomeRequest{Completed: true})
	require.NoError(t, err)
	assert.True(t, entry.Completed)

	// 2件目を未完了で記録しても既存実績と合わせて 50% のまま達成
	entry, err = svc.UpsertOutcome(ctx, userID, habit.HabitID, st2.SubTaskID, d, &model.UpsertOutcomeRequest{Completed: false})
	require.NoError(t, err)
	assert.True(t, entry.Completed)

	// 1件目を未完了に戻すと 0% で未達成に転じる。行は消えず残る (進行中の正規状態)
	entry, err = svc.UpsertOutcome(ctx, userID, habit.HabitID, st1.SubTaskID, d, &model.UpsertOutcomeRequest{Completed: false})
	require.NoError(t, err)
	assert.False(t, entry.Completed)

	var entryCount int64
	require.NoError(t, db.Model(&model.Entry{}).
		Where("user_id = ? AND habit_id = ?", userID, habit.HabitID).
		Count(&entryCount).Error)
	assert.Equal(t, int64(1), entryCount)

	// 同一サブタスク・同一日の実績も1行に収束している
	var outcomeCount int64
	require.NoError(t, db.Model(&model.SubTaskOutcome{}).
		Where("user_id = ? AND habit_id = ? AND sub_task_id = ?", userID, habit.HabitID, st1.SubTaskID).
		Count(&outcomeCount).Error)
	assert.Equal(t, int64(1), outcomeCount)
}

func Test_entryService_UpsertOutcome_PreservesNotes(t *testing.T) {
	ctx := context.Background()
	db := setupLedgerDB(t)
	svc := newEntryForTest(db)
	userID := uuid.New()

	habit := &model.Habit{
		UserID:       userID,
		Name:         "朝のルーティン",
		HasSubTasks:  true,
		ProgressRule: model.RuleAll,
	}
	seedHabit(t, db, habit)
	st, err := svc.CreateSubTask(ctx, userID, habit.HabitID, &model.PostSubTaskRequest{Name: "白湯を飲む"})
	require.NoError(t, err)

	d := day(2026, 3, 13)
	_, err = svc.MarkComplete(ctx, userID, habit.HabitID, d, &model.UpsertEntryRequest{Notes: "メモ"})
	require.NoError(t, err)

	// 再評価の upsert は completed だけを書き、notes は潰さない
	_, err = svc.UpsertOutcome(ctx, userID, habit.HabitID, st.SubTaskID, d, &model.UpsertOutcomeRequest{Completed: true})
	require.NoError(t, err)

	var saved model.Entry
	require.NoError(t, db.Where("user_id = ? AND habit_id = ?", userID, habit.HabitID).First(&saved).Error)
	assert.Equal(t, "メモ", saved.Notes)
	assert.True(t, saved.Completed)
}

func Test_entryService_UpsertOutcome_UnknownSubTask(t *testing.T) {
	ctx := context.Background()
	db := setupLedgerDB(t)
	svc := newEntryForTest(db)
	userID := uuid.New()

	habit := &model.Habit{UserID: userID, Name: "朝のルーティン", HasSubTasks: true}
	seedHabit(t, db, habit)

	_, err := svc.UpsertOutcome(ctx, userID, habit.HabitID, uuid.New(), day(2026, 3, 14), &model.UpsertOutcomeRequest{Completed: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
