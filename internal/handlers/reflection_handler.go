// internal/handlers/reflection_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"go_5_habit_keep/internal/middleware"
	"go_5_habit_keep/internal/model"
	"go_5_habit_keep/internal/service"
	"go_5_habit_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ReflectionHandler struct {
	service service.ReflectionService
	logger  *slog.Logger
}

func NewReflectionHandler(s service.ReflectionService, logger *slog.Logger) *ReflectionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReflectionHandler{
		service: s,
		logger:  logger,
	}
}

// PutReflection は月次ふりかえりを upsert するためのハンドラ
func (h *ReflectionHandler) PutReflection(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutReflection"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	year, month, appErr := parseYearMonthParam(r)
	if appErr != nil {
		logger.Warn("Invalid year/month in URL", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.Int("year", year), slog.Int("month", month))

	var req model.UpsertReflectionRequest
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

	reflection, err := h.service.UpsertReflection(r.Context(), userID, year, month, &req)
	if err != nil {
		logger.Error("Error upserting reflection in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Reflection upserted successfully")
	webutil.RespondWithJSON(w, http.StatusOK, reflection, logger)
}

// GetReflection は月次ふりかえりを取得するためのハンドラ
func (h *ReflectionHandler) GetReflection(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetReflection"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	year, month, appErr := parseYearMonthParam(r)
	if appErr != nil {
		logger.Warn("Invalid year/month in URL", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.Int("year", year), slog.Int("month", month))

	reflection, err := h.service.GetReflection(r.Context(), userID, year, month)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Reflection not found", slog.Any("error", err))
		} else {
			logger.Error("Error getting reflection from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Reflection retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, reflection, logger)
}

// parseYearMonthParam はURLパラメータの year / month をパースするヘルパー
func parseYearMonthParam(r *http.Request) (int, int, *model.AppError) {
	yearStr := chi.URLParam(r, "year")
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		return 0, 0, model.NewAppError("INVALID_URL_PARAM", "yearの形式が正しくありません。", "year", model.ErrInvalidInput)
	}

	monthStr := chi.URLParam(r, "month")
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, model.NewAppError("INVALID_URL_PARAM", "monthは1から12の範囲で指定してください。", "month", model.ErrInvalidInput)
	}

	return year, month, nil
}
