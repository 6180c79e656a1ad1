// internal/handlers/analytics_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"log/slog"

	"go_5_habit_keep/internal/middleware"
	"go_5_habit_keep/internal/model"
	"go_5_habit_keep/internal/service"
	"go_5_habit_keep/internal/webutil"
)

type AnalyticsHandler struct {
	service service.AnalyticsService
	logger  *slog.Logger
}

func NewAnalyticsHandler(s service.AnalyticsService, logger *slog.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsHandler{
		service: s,
		logger:  logger,
	}
}

// GetMonthlyAnalytics は月次の日別・週別集計を返すハンドラ
func (h *AnalyticsHandler) GetMonthlyAnalytics(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMonthlyAnalytics"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	year, month, appErr := parseYearMonthQuery(r)
	if appErr != nil {
		logger.Warn("Invalid year/month query", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.Int("year", year), slog.Int("month", month))

	analytics, err := h.service.GetMonthlyAnalytics(r.Context(), userID, year, month)
	if err != nil {
		logger.Error("Error aggregating monthly analytics in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Monthly analytics aggregated successfully",
		slog.Int("daily_buckets", len(analytics.Daily)),
		slog.Int("weekly_buckets", len(analytics.Weekly)),
	)
	webutil.RespondWithJSON(w, http.StatusOK, analytics, logger)
}

// parseYearMonthQuery は year / month クエリパラメータをパースするヘルパー
func parseYearMonthQuery(r *http.Request) (int, int, *model.AppError) {
	yearStr := r.URL.Query().Get("year")
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		return 0, 0, model.NewAppError("INVALID_QUERY_PARAM", "yearクエリパラメータが正しくありません。", "year", model.ErrInvalidInput)
	}

	monthStr := r.URL.Query().Get("month")
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, model.NewAppError("INVALID_QUERY_PARAM", "monthクエリパラメータは1から12の範囲で指定してください。", "month", model.ErrInvalidInput)
	}

	return year, month, nil
}
