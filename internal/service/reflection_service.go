// internal/service/reflection_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"go_5_habit_keep/internal/middleware"
	"go_5_habit_keep/internal/model"
	"go_5_habit_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReflectionService interface {
	UpsertReflection(ctx context.Context, userID uuid.UUID, year, month int, req *model.UpsertReflectionRequest) (*model.ReflectionResponse, error)
	GetReflection(ctx context.Context, userID uuid.UUID, year, month int) (*model.ReflectionResponse, error)
}

type reflectionService struct {
	db             *gorm.DB
	reflectionRepo repository.ReflectionRepository
}

func NewReflectionService(db *gorm.DB, reflectionRepo repository.ReflectionRepository) ReflectionService {
	return &reflectionService{
		db:             db,
		reflectionRepo: reflectionRepo,
	}
}

func (s *reflectionService) UpsertReflection(ctx context.Context, userID uuid.UUID, year, month int, req *model.UpsertReflectionRequest) (*model.ReflectionResponse, error) {
	logger := middleware.GetLogger(ctx)

	if month < 1 || month > 12 {
		return nil, model.NewAppError("INVALID_MONTH", "月は1から12の範囲で指定してください。", "month", model.ErrInvalidInput)
	}
	// 未知のキーは受け付けない
	for key := range req.Context {
		if !model.RecognizedReflectionKeys[key] {
			return nil, model.NewAppError("UNKNOWN_CONTEXT_KEY",
				fmt.Sprintf("コンテキストキー '%s' は使用できません。", key), "context", model.ErrInvalidInput)
		}
	}

	reflection := &model.Reflection{
		ReflectionID: uuid.New(),
		UserID:       userID,
		Year:         year,
		Month:        month,
		Body:         req.Body,
	}
	if err := reflection.SetContext(req.Context); err != nil {
		logger.Error("Failed to encode reflection context", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "振り返りの保存に失敗しました。", "", err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.reflectionRepo.Upsert(ctx, tx, reflection)
	})
	if err != nil {
		logger.Error("Failed to upsert reflection", "error", err, "year", year, "month", month)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "振り返りの保存に失敗しました。", "", err)
	}

	// 既存行の更新時はIDが変わらないので読み直す
	return s.GetReflection(ctx, userID, year, month)
}

func (s *reflectionService) GetReflection(ctx context.Context, userID uuid.UUID, year, month int) (*model.ReflectionResponse, error) {
	logger := middleware.GetLogger(ctx)

	reflection, err := s.reflectionRepo.Find(ctx, s.db, userID, year, month)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "指定された月の振り返りが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find reflection", "error", err, "year", year, "month", month)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "振り返りの取得に失敗しました。", "", err)
	}

	return &model.ReflectionResponse{
		Year:    reflection.Year,
		Month:   reflection.Month,
		Body:    reflection.Body,
		Context: reflection.Context(),
	}, nil
}
