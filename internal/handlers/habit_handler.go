// internal/handlers/habit_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_habit_keep/internal/middleware"
	"go_5_habit_keep/internal/model"
	"go_5_habit_keep/internal/service"
	"go_5_habit_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type HabitHandler struct {
	service service.HabitService
	logger  *slog.Logger
}

func NewHabitHandler(s service.HabitService, logger *slog.Logger) *HabitHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HabitHandler{
		service: s,
		logger:  logger,
	}
}

// PostHabit は新しい習慣リソースを作成するためのハンドラ
func (h *HabitHandler) PostHabit(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostHabit"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.PostHabitRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()), slog.Any("request", req))

			firstErr := validationErrors[0]
			translatedMsg := firstErr.Translate(webutil.Trans)

			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				translatedMsg,
				firstErr.Field(),
				model.ErrInvalidInput,
			)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	habit, err := h.service.CreateHabit(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating habit in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Habit created successfully", slog.String("habit_id", habit.HabitID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, habit, logger)
}

// GetHabits は習慣リソースの一覧を取得するためのハンドラ
func (h *HabitHandler) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetHabits"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	includeArchived := r.URL.Query().Get("archived") == "true"

	habits, err := h.service.ListHabits(r.Context(), userID, includeArchived)
	if err != nil {
		logger.Error("Error listing habits in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if habits == nil {
		habits = []*model.Habit{}
	}
	logger.Info("Habits listed successfully", slog.Int("count", len(habits)))
	webutil.RespondWithJSON(w, http.StatusOK, habits, logger)
}

// GetHabit は特定の習慣リソースを取得するためのハンドラ
func (h *HabitHandler) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetHabit"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	habitID, appErr := parseHabitID(r)
	if appErr != nil {
		logger.Warn("Invalid habit ID format in URL", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("habit_id", habitID.String()))

	habit, err := h.service.GetHabit(r.Context(), userID, habitID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Habit not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting habit from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Habit retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, habit, logger)
}

// PatchHabit は特定の習慣リソースの一部を更新するためのハンドラ
func (h *HabitHandler) PatchHabit(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchHabit"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt for PatchHabit", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	habitID, appErr := parseHabitID(r)
	if appErr != nil {
		logger.Warn("Invalid habit ID format in URL for PatchHabit", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("habit_id", habitID.String()))

	var req model.PatchHabitRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PatchHabit request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()), slog.Any("request", req))

			firstErr := validationErrors[0]
			translatedMsg := firstErr.Translate(webutil.Trans)

			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				translatedMsg,
				firstErr.Field(),
				model.ErrInvalidInput,
			)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	habit, err := h.service.PatchHabit(r.Context(), userID, habitID, &req)
	if err != nil {
		logger.Error("Error patching habit in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Habit patched successfully")
	webutil.RespondWithJSON(w, http.StatusOK, habit, logger)
}

// DeleteHabit は特定の習慣をアーカイブ (論理削除) するためのハンドラ
func (h *HabitHandler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteHabit"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt for DeleteHabit", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	habitID, appErr := parseHabitID(r)
	if appErr != nil {
		logger.Warn("Invalid habit ID format in URL for DeleteHabit", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("habit_id", habitID.String()))

	err = h.service.ArchiveHabit(r.Context(), userID, habitID)
	if err != nil {
		logger.Error("Error archiving habit in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Habit archived successfully")
	w.WriteHeader(http.StatusNoContent)
}

// parseHabitID はURLパラメータからhabit_idを取り出すヘルパー
func parseHabitID(r *http.Request) (uuid.UUID, *model.AppError) {
	habitIDStr := chi.URLParam(r, "habit_id")
	habitID, err := uuid.Parse(habitIDStr)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_URL_PARAM", "habit_idの形式が正しくありません。", "habit_id", model.ErrInvalidInput)
	}
	return habitID, nil
}
