// internal/service/habit_service.go
package service

import (
	"context"
	"errors"
	"log"

	"go_5_habit_keep/internal/config"
	"go_5_habit_keep/internal/model"
	"go_5_habit_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HabitService interface {
	CreateHabit(ctx context.Context, userID uuid.UUID, req *model.PostHabitRequest) (*model.Habit, error)
	GetHabit(ctx context.Context, userID, habitID uuid.UUID) (*model.Habit, error)
	ListHabits(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*model.Habit, error)
	PatchHabit(ctx context.Context, userID, habitID uuid.UUID, req *model.PatchHabitRequest) (*model.Habit, error)
	// ArchiveHabit はソフト削除です。エントリが参照し続けるため行は消しません。
	ArchiveHabit(ctx context.Context, userID, habitID uuid.UUID) error
}

type habitService struct {
	db        *gorm.DB
	habitRepo repository.HabitRepository
}

func NewHabitService(db *gorm.DB, habitRepo repository.HabitRepository) HabitService {
	return &habitService{
		db:        db,
		habitRepo: habitRepo,
	}
}

func (s *habitService) CreateHabit(ctx context.Context, userID uuid.UUID, req *model.PostHabitRequest) (*model.Habit, error) {
	habit := &model.Habit{
		HabitID:             uuid.New(),
		UserID:              userID,
		Name:                req.Name,
		Emoji:               req.Emoji,
		Color:               req.Color,
		Frequency:           "daily",
		WeeklyTarget:        config.DefaultWeeklyTarget,
		MonthlyTarget:       config.DefaultMonthlyTarget,
		HasSubTasks:         req.HasSubTasks,
		ProgressRule:        model.RuleAll,
		CompletionThreshold: config.DefaultCompletionThreshold,
	}
	if req.Frequency != "" {
		habit.Frequency = req.Frequency
	}
	if req.WeeklyTarget != nil {
		habit.WeeklyTarget = *req.WeeklyTarget
	}
	if req.MonthlyTarget != nil {
		habit.MonthlyTarget = *req.MonthlyTarget
	}
	if req.ProgressRule != nil {
		habit.ProgressRule = model.ProgressRule(*req.ProgressRule)
	}
	// 閾値は PERCENTAGE/POINTS でのみ意味を持つが、他ルールで未指定でも
	// 100 を入れておく (ルール変更後の評価が壊れないように)
	if req.CompletionThreshold != nil {
		habit.CompletionThreshold = *req.CompletionThreshold
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.habitRepo.Create(ctx, tx, habit); err != nil {
			log.Printf("Error creating habit in transaction: %v", err)
			if errors.Is(err, model.ErrConflict) {
				return model.ErrConflict
			}
			return model.ErrInternalServer
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *habitService) GetHabit(ctx context.Context, userID, habitID uuid.UUID) (*model.Habit, error) {
	habit, err := s.habitRepo.FindByID(ctx, s.db, userID, habitID)
	if err != nil {
		// エラーはリポジトリで変換済みのはず
		return nil, err
	}
	return habit, nil
}

func (s *habitService) ListHabits(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*model.Habit, error) {
	habits, err := s.habitRepo.List(ctx, s.db, userID, includeArchived)
	if err != nil {
		log.Printf("Error listing habits: %v", err)
		return nil, model.ErrInternalServer
	}
	return habits, nil
}

func (s *habitService) PatchHabit(ctx context.Context, userID, habitID uuid.UUID, req *model.PatchHabitRequest) (*model.Habit, error) {
	var updated *model.Habit

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 存在確認 (トランザクション内でロックを取る意味合いもある)
		if _, err := s.habitRepo.FindByID(ctx, tx, userID, habitID); err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Emoji != nil {
			updates["emoji"] = *req.Emoji
		}
		if req.Color != nil {
			updates["color"] = *req.Color
		}
		if req.Frequency != nil {
			updates["frequency"] = *req.Frequency
		}
		if req.WeeklyTarget != nil {
			updates["weekly_target"] = *req.WeeklyTarget
		}
		if req.MonthlyTarget != nil {
			updates["monthly_target"] = *req.MonthlyTarget
		}
		if req.HasSubTasks != nil {
			updates["has_sub_tasks"] = *req.HasSubTasks
		}
		if req.ProgressRule != nil {
			updates["progress_rule"] = *req.ProgressRule
		}
		if req.CompletionThreshold != nil {
			updates["completion_threshold"] = *req.CompletionThreshold
		}

		if len(updates) > 0 {
			if err := s.habitRepo.Update(ctx, tx, userID, habitID, updates); err != nil {
				log.Printf("Error updating habit in transaction: %v", err)
				if errors.Is(err, model.ErrNotFound) {
					return model.ErrNotFound
				}
				return model.ErrInternalServer
			}
		}

		var err error
		updated, err = s.habitRepo.FindByID(ctx, tx, userID, habitID)
		if err != nil {
			log.Printf("Error fetching updated habit in transaction: %v", err)
			return model.ErrInternalServer
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		return nil, model.ErrInternalServer
	}

	return updated, nil
}

func (s *habitService) ArchiveHabit(ctx context.Context, userID, habitID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.habitRepo.Archive(ctx, tx, userID, habitID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			log.Printf("Error archiving habit %s: %v", habitID, err)
			return model.ErrInternalServer
		}
		return nil
	})
}
