// internal/service/entry_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_5_habit_keep/internal/middleware"
	"go_5_habit_keep/internal/model"
	"go_5_habit_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntryService は Ledger の書き込み経路 (1習慣・1日の状態遷移) を実装します。
//
// 状態は (habit, user, day) ごとに absent → present の2値です。
//   - MarkComplete:   absent→present / present→present (べき等 upsert)
//   - MarkIncomplete: present→absent (ハード削除) / absent→absent (no-op、エラーにしない)
//
// 単純な習慣に「存在するが未達成」という永続状態はありません。未達成は不在で
// 表現します。サブタスク経路では「存在するが未達成」が正規の途中状態で、
// ルール評価器が completed を決めます。
type EntryService interface {
	MarkComplete(ctx context.Context, userID, habitID uuid.UUID, day time.Time, req *model.UpsertEntryRequest) (*model.Entry, error)
	MarkIncomplete(ctx context.Context, userID, habitID uuid.UUID, day time.Time) (bool, error)
	ListEntries(ctx context.Context, userID, habitID uuid.UUID, from, to time.Time) ([]*model.Entry, error)

	CreateSubTask(ctx context.Context, userID, habitID uuid.UUID, req *model.PostSubTaskRequest) (*model.SubTask, error)
	ListSubTasks(ctx context.Context, userID, habitID uuid.UUID) ([]*model.SubTask, error)
	// UpsertOutcome はサブタスク実績を書き込み、その日の Entry を
	// 現行ルールで再評価して completed を更新します。
	UpsertOutcome(ctx context.Context, userID, habitID, subTaskID uuid.UUID, day time.Time, req *model.UpsertOutcomeRequest) (*model.Entry, error)
}

type entryService struct {
	db          *gorm.DB
	habitRepo   repository.HabitRepository
	entryRepo   repository.EntryRepository
	subTaskRepo repository.SubTaskRepository
}

func NewEntryService(db *gorm.DB, habitRepo repository.HabitRepository, entryRepo repository.EntryRepository, subTaskRepo repository.SubTaskRepository) EntryService {
	return &entryService{
		db:          db,
		habitRepo:   habitRepo,
		entryRepo:   entryRepo,
		subTaskRepo: subTaskRepo,
	}
}

// findWritableHabit は書き込み対象の習慣を取得します。
// 他ユーザーの習慣・存在しない習慣・アーカイブ済み習慣はいずれも NotFound です
// (エントリの不在とは区別されるエラー)。
func (s *entryService) findWritableHabit(ctx context.Context, db *gorm.DB, userID, habitID uuid.UUID) (*model.Habit, error) {
	habit, err := s.habitRepo.FindByID(ctx, db, userID, habitID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "習慣が見つかりません。", "habit_id", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "習慣の取得に失敗しました。", "", err)
	}
	if habit.Archived {
		return nil, model.NewAppError("NOT_FOUND", "習慣が見つかりません。", "habit_id", model.ErrNotFound)
	}
	return habit, nil
}

func (s *entryService) MarkComplete(ctx context.Context, userID, habitID uuid.UUID, day time.Time, req *model.UpsertEntryRequest) (*model.Entry, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "habit_id", habitID, "day", dayKey(day))

	var entry *model.Entry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.findWritableHabit(ctx, tx, userID, habitID); err != nil {
			return err
		}

		entry = &model.Entry{
			EntryID:   uuid.New(),
			UserID:    userID,
			HabitID:   habitID,
			EntryDate: truncateDay(day),
			Completed: true,
			Notes:     req.Notes,
			Value:     req.Value,
		}
		if err := s.entryRepo.Upsert(ctx, tx, entry); err != nil {
			logger.Error("Failed to upsert entry", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "記録の保存に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Entry marked complete")
	return entry, nil
}

func (s *entryService) MarkIncomplete(ctx context.Context, userID, habitID uuid.UUID, day time.Time) (bool, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "habit_id", habitID, "day", dayKey(day))

	if _, err := s.findWritableHabit(ctx, s.db, userID, habitID); err != nil {
		return false, err
	}

	deleted, err := s.entryRepo.Delete(ctx, s.db, userID, habitID, day)
	if err != nil {
		logger.Error("Failed to delete entry", "error", err)
		return false, model.NewAppError("INTERNAL_SERVER_ERROR", "記録の削除に失敗しました。", "", err)
	}
	if !deleted {
		// 消すものが無かった場合も正常 (deleted=false で報告するだけ)
		logger.Info("Nothing to delete for day")
	} else {
		logger.Info("Entry deleted")
	}
	return deleted, nil
}

func (s *entryService) ListEntries(ctx context.Context, userID, habitID uuid.UUID, from, to time.Time) ([]*model.Entry, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "habit_id", habitID)

	if _, err := s.habitRepo.FindByID(ctx, s.db, userID, habitID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "習慣が見つかりません。", "habit_id", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "習慣の取得に失敗しました。", "", err)
	}

	entries, err := s.entryRepo.FindByDateRange(ctx, s.db, userID, &habitID, from, to)
	if err != nil {
		logger.Error("Failed to list entries", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "記録の取得に失敗しました。", "", err)
	}
	return entries, nil
}

func (s *entryService) CreateSubTask(ctx context.Context, userID, habitID uuid.UUID, req *model.PostSubTaskRequest) (*model.SubTask, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "habit_id", habitID)

	var subTask *model.SubTask
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		habit, err := s.findWritableHabit(ctx, tx, userID, habitID)
		if err != nil {
			return err
		}
		if !habit.HasSubTasks {
			return model.NewAppError("SUB_TASKS_DISABLED", "この習慣はサブタスクを持ちません。", "habit_id", model.ErrInvalidInput)
		}

		subTask = &model.SubTask{
			SubTaskID: uuid.New(),
			HabitID:   habitID,
			UserID:    userID,
			Name:      req.Name,
		}
		if err := s.subTaskRepo.CreateDefinition(ctx, tx, subTask); err != nil {
			logger.Error("Failed to create sub task", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サブタスクの作成に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Sub task created", "sub_task_id", subTask.SubTaskID)
	return subTask, nil
}

func (s *entryService) ListSubTasks(ctx context.Context, userID, habitID uuid.UUID) ([]*model.SubTask, error) {
	if _, err := s.habitRepo.FindByID(ctx, s.db, userID, habitID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "習慣が見つかりません。", "habit_id", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "習慣の取得に失敗しました。", "", err)
	}
	subTasks, err := s.subTaskRepo.ListDefinitions(ctx, s.db, userID, habitID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サブタスク一覧の取得に失敗しました。", "", err)
	}
	return subTasks, nil
}

func (s *entryService) UpsertOutcome(ctx context.Context, userID, habitID, subTaskID uuid.UUID, day time.Time, req *model.UpsertOutcomeRequest) (*model.Entry, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "habit_id", habitID, "sub_task_id", subTaskID, "day", dayKey(day))

	var entry *model.Entry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		habit, err := s.findWritableHabit(ctx, tx, userID, habitID)
		if err != nil {
			return err
		}
		if !habit.HasSubTasks {
			return model.NewAppError("SUB_TASKS_DISABLED", "この習慣はサブタスクを持ちません。", "habit_id", model.ErrInvalidInput)
		}
		if _, err := s.subTaskRepo.FindDefinition(ctx, tx, userID, habitID, subTaskID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "サブタスクが見つかりません。", "sub_task_id", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サブタスクの取得に失敗しました。", "", err)
		}

		points := 0.0
		if req.Points != nil {
			points = *req.Points
		}
		outcome := &model.SubTaskOutcome{
			OutcomeID: uuid.New(),
			UserID:    userID,
			HabitID:   habitID,
			EntryDate: truncateDay(day),
			SubTaskID: subTaskID,
			Completed: req.Completed,
			Points:    points,
		}
		if err := s.subTaskRepo.UpsertOutcome(ctx, tx, outcome); err != nil {
			logger.Error("Failed to upsert outcome", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サブタスク実績の保存に失敗しました。", "", err)
		}

		// その日の全実績を引き直して現行ルールで再評価し、Entry に畳み込む。
		// サブタスク経路では未達成でも行を残す (進行中の正規状態)。
		outcomes, err := s.subTaskRepo.FindOutcomesByDay(ctx, tx, userID, habitID, day)
		if err != nil {
			logger.Error("Failed to load outcomes for evaluation", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サブタスク実績の取得に失敗しました。", "", err)
		}
		completed, credit := EvaluateDay(habit.ProgressRule, habit.CompletionThreshold, outcomes)

		entry = &model.Entry{
			EntryID:   uuid.New(),
			UserID:    userID,
			HabitID:   habitID,
			EntryDate: truncateDay(day),
			Completed: completed,
		}
		if err := s.entryRepo.UpsertCompletion(ctx, tx, entry); err != nil {
			logger.Error("Failed to upsert entry after evaluation", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "記録の保存に失敗しました。", "", err)
		}

		logger.Debug("Day re-evaluated from outcomes", "completed", completed, "credit", credit)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Outcome upserted")
	return entry, nil
}
