// internal/handlers/overview_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_habit_keep/internal/middleware"
	"go_5_habit_keep/internal/model"
	"go_5_habit_keep/internal/service"
	"go_5_habit_keep/internal/webutil"
)

type OverviewHandler struct {
	service service.OverviewService
	logger  *slog.Logger
}

func NewOverviewHandler(s service.OverviewService, logger *slog.Logger) *OverviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &OverviewHandler{
		service: s,
		logger:  logger,
	}
}

// GetMonthlyOverview は月次概況キャッシュを再計算して返すハンドラ
func (h *OverviewHandler) GetMonthlyOverview(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMonthlyOverview"))

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

	overview, err := h.service.RefreshMonthly(r.Context(), userID, year, month)
	if err != nil {
		logger.Error("Error refreshing monthly overview in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Monthly overview refreshed successfully",
		slog.Int("completed", overview.Completed),
		slog.Int("target", overview.Target),
	)
	webutil.RespondWithJSON(w, http.StatusOK, overview, logger)
}

// GetWeeklyOverview は習慣単位の週次概況キャッシュを再計算して返すハンドラ
func (h *OverviewHandler) GetWeeklyOverview(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWeeklyOverview"))

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

	weekStart, appErr := parseDateQuery(r, "week_start")
	if appErr != nil {
		logger.Warn("Invalid week_start query", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	overview, err := h.service.RefreshWeekly(r.Context(), userID, habitID, weekStart)
	if err != nil {
		logger.Error("Error refreshing weekly overview in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Weekly overview refreshed successfully",
		slog.Int("completed", overview.Completed),
		slog.Int("target", overview.Target),
	)
	webutil.RespondWithJSON(w, http.StatusOK, overview, logger)
}
