// internal/handlers/entry_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"go_5_habit_keep/internal/middleware"
	"go_5_habit_keep/internal/model"
	"go_5_habit_keep/internal/service"
	"go_5_habit_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// dateLayout はURL・クエリパラメータ上の日付形式です。
const dateLayout = "2006-01-02"

type EntryHandler struct {
	service service.EntryService
	logger  *slog.Logger
}

func NewEntryHandler(s service.EntryService, logger *slog.Logger) *EntryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EntryHandler{
		service: s,
		logger:  logger,
	}
}

// PutEntry は指定日のエントリを「完了」として upsert するためのハンドラ
func (h *EntryHandler) PutEntry(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutEntry"))

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

	day, appErr := parseDateParam(r, "date")
	if appErr != nil {
		logger.Warn("Invalid date format in URL", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("habit_id", habitID.String()), slog.String("date", day.Format(dateLayout)))

	// ボディは任意 (メモ・記録値なしの単純な完了マークを許容する)
	var req model.UpsertEntryRequest
	if r.ContentLength > 0 {
		if err := webutil.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
			appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		if err := webutil.Validator.Struct(req); err != nil {
			var validationErrors validator.ValidationErrors
			if errors.As(err, &validationErrors) {
				logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))
				firstErr := validationErrors[0]
				appErr := model.NewAppError("VALIDATION_ERROR", firstErr.Translate(webutil.Trans), firstErr.Field(), model.ErrInvalidInput)
				webutil.HandleError(w, logger, appErr)
			} else {
				logger.Error("Unexpected error during validation", slog.Any("error", err))
				webutil.HandleError(w, logger, err)
			}
			return
		}
	}

	entry, err := h.service.MarkComplete(r.Context(), userID, habitID, day, &req)
	if err != nil {
		logger.Error("Error marking entry complete in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Entry marked complete", slog.String("entry_id", entry.EntryID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, entry, logger)
}

// DeleteEntry は指定日のエントリを削除 (未完了化) するためのハンドラ。
// 対象が存在しない場合もエラーにせず deleted=false を返します。
func (h *EntryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteEntry"))

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

	day, appErr := parseDateParam(r, "date")
	if appErr != nil {
		logger.Warn("Invalid date format in URL", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("habit_id", habitID.String()), slog.String("date", day.Format(dateLayout)))

	deleted, err := h.service.MarkIncomplete(r.Context(), userID, habitID, day)
	if err != nil {
		logger.Error("Error marking entry incomplete in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Entry marked incomplete", slog.Bool("deleted", deleted))
	webutil.RespondWithJSON(w, http.StatusOK, model.DeleteEntryResponse{Deleted: deleted}, logger)
}

// GetEntries は指定期間のエントリ一覧を取得するためのハンドラ
func (h *EntryHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetEntries"))

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

	from, appErr := parseDateQuery(r, "from")
	if appErr != nil {
		logger.Warn("Invalid from date", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}
	to, appErr := parseDateQuery(r, "to")
	if appErr != nil {
		logger.Warn("Invalid to date", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	entries, err := h.service.ListEntries(r.Context(), userID, habitID, from, to)
	if err != nil {
		logger.Error("Error listing entries in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if entries == nil {
		entries = []*model.Entry{}
	}
	logger.Info("Entries listed successfully", slog.Int("count", len(entries)))
	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}

// PostSubTask は習慣にサブタスク定義を追加するためのハンドラ
func (h *EntryHandler) PostSubTask(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSubTask"))

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

	var req model.PostSubTaskRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))
			firstErr := validationErrors[0]
			appErr := model.NewAppError("VALIDATION_ERROR", firstErr.Translate(webutil.Trans), firstErr.Field(), model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	subTask, err := h.service.CreateSubTask(r.Context(), userID, habitID, &req)
	if err != nil {
		logger.Error("Error creating sub task in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Sub task created successfully", slog.String("sub_task_id", subTask.SubTaskID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, subTask, logger)
}

// GetSubTasks は習慣のサブタスク定義一覧を取得するためのハンドラ
func (h *EntryHandler) GetSubTasks(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSubTasks"))

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

	subTasks, err := h.service.ListSubTasks(r.Context(), userID, habitID)
	if err != nil {
		logger.Error("Error listing sub tasks in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if subTasks == nil {
		subTasks = []*model.SubTask{}
	}
	logger.Info("Sub tasks listed successfully", slog.Int("count", len(subTasks)))
	webutil.RespondWithJSON(w, http.StatusOK, subTasks, logger)
}

// PutOutcome は指定日のサブタスク実績を upsert し、エントリを再評価するためのハンドラ
func (h *EntryHandler) PutOutcome(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutOutcome"))

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

	day, appErr := parseDateParam(r, "date")
	if appErr != nil {
		logger.Warn("Invalid date format in URL", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	subTaskIDStr := chi.URLParam(r, "sub_task_id")
	subTaskID, err := uuid.Parse(subTaskIDStr)
	if err != nil {
		logger.Warn("Invalid sub task ID format in URL", slog.String("sub_task_id_str", subTaskIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "sub_task_idの形式が正しくありません。", "sub_task_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(
		slog.String("habit_id", habitID.String()),
		slog.String("sub_task_id", subTaskID.String()),
		slog.String("date", day.Format(dateLayout)),
	)

	var req model.UpsertOutcomeRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))
			firstErr := validationErrors[0]
			appErr := model.NewAppError("VALIDATION_ERROR", firstErr.Translate(webutil.Trans), firstErr.Field(), model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	entry, err := h.service.UpsertOutcome(r.Context(), userID, habitID, subTaskID, day, &req)
	if err != nil {
		logger.Error("Error upserting outcome in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Outcome upserted and entry re-evaluated", slog.Bool("completed", entry.Completed))
	webutil.RespondWithJSON(w, http.StatusOK, entry, logger)
}

// parseDateParam はURLパラメータの YYYY-MM-DD 日付をパースするヘルパー
func parseDateParam(r *http.Request, name string) (time.Time, *model.AppError) {
	dateStr := chi.URLParam(r, name)
	day, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, model.NewAppError("INVALID_URL_PARAM", name+"はYYYY-MM-DD形式で指定してください。", name, model.ErrInvalidInput)
	}
	return day, nil
}

// parseDateQuery はクエリパラメータの YYYY-MM-DD 日付をパースするヘルパー
func parseDateQuery(r *http.Request, name string) (time.Time, *model.AppError) {
	dateStr := r.URL.Query().Get(name)
	if dateStr == "" {
		return time.Time{}, model.NewAppError("MISSING_QUERY_PARAM", name+"クエリパラメータは必須です。", name, model.ErrInvalidInput)
	}
	day, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, model.NewAppError("INVALID_QUERY_PARAM", name+"はYYYY-MM-DD形式で指定してください。", name, model.ErrInvalidInput)
	}
	return day, nil
}
