// internal/handlers/habit_handler_test.go
package handlers_test

import (
	"net/http"
	"testing"

	"go_5_habit_keep/internal/handlers"
	"go_5_habit_keep/internal/model"
	"go_5_habit_keep/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupHabitRouter(t *testing.T) (*chi.Mux, *mocks.MockHabitService) {
	t.Helper()
	mockService := mocks.NewMockHabitService(t)
	handler := handlers.NewHabitHandler(mockService, discardLogger())
	router := newTestRouter(func(r chi.Router) {
		r.Route("/api/v1/habits", func(r chi.Router) {
			r.Post("/", handler.PostHabit)
			r.Get("/", handler.GetHabits)
			r.Route("/{habit_id}", func(r chi.Router) {
				r.Get("/", handler.GetHabit)
				r.Patch("/", handler.PatchHabit)
				r.Delete("/", handler.DeleteHabit)
			})
		})
	})
	return router, mockService
}

func TestHabitHandler_PostHabit(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 習慣の作成に成功し201を返す", func(t *testing.T) {
		router, mockService := setupHabitRouter(t)

		created := &model.Habit{
			HabitID:   uuid.New(),
			UserID:    userID,
			Name:      "読書",
			Frequency: "daily",
		}
		mockService.On("CreateHabit", mock.Anything, userID, mock.AnythingOfType("*model.PostHabitRequest")).
			Run(func(args mock.Arguments) {
				req := args.Get(2).(*model.PostHabitRequest)
				assert.Equal(t, "読書", req.Name)
			}).Return(created, nil).Once()

		req := createRequest(t, http.MethodPost, "/api/v1/habits", &userID, map[string]interface{}{"name": "読書"})
		rr := sendRequest(router, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		var got model.Habit
		decodeBody(t, rr, &got)
		assert.Equal(t, created.HabitID, got.HabitID)
		assert.Equal(t, "読書", got.Name)
	})

	t.Run("異常系: X-User-IDヘッダー無しは403", func(t *testing.T) {
		router, _ := setupHabitRouter(t)

		req := createRequest(t, http.MethodPost, "/api/v1/habits", nil, map[string]interface{}{"name": "読書"})
		rr := sendRequest(router, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("異常系: nameが空はバリデーションエラーで400", func(t *testing.T) {
		router, _ := setupHabitRouter(t)

		req := createRequest(t, http.MethodPost, "/api/v1/habits", &userID, map[string]interface{}{"name": ""})
		rr := sendRequest(router, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		var got model.APIErrorResponse
		decodeBody(t, rr, &got)
		assert.Equal(t, "VALIDATION_ERROR", got.Error.Code)
	})

	t.Run("異常系: 未知のフィールドを含むボディは400", func(t *testing.T) {
		router, _ := setupHabitRouter(t)

		req := createRequest(t, http.MethodPost, "/api/v1/habits", &userID, map[string]interface{}{
			"name": "読書", "unknown_field": true,
		})
		rr := sendRequest(router, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHabitHandler_GetHabits(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 一覧を取得できる", func(t *testing.T) {
		router, mockService := setupHabitRouter(t)

		habits := []*model.Habit{
			{HabitID: uuid.New(), UserID: userID, Name: "読書"},
			{HabitID: uuid.New(), UserID: userID, Name: "散歩"},
		}
		mockService.On("ListHabits", mock.Anything, userID, false).Return(habits, nil).Once()

		req := createRequest(t, http.MethodGet, "/api/v1/habits", &userID, nil)
		rr := sendRequest(router, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got []*model.Habit
		decodeBody(t, rr, &got)
		assert.Len(t, got, 2)
	})

	t.Run("正常系: archived=true でアーカイブ込みの一覧", func(t *testing.T) {
		router, mockService := setupHabitRouter(t)

		mockService.On("ListHabits", mock.Anything, userID, true).Return([]*model.Habit{}, nil).Once()

		req := createRequest(t, http.MethodGet, "/api/v1/habits?archived=true", &userID, nil)
		rr := sendRequest(router, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String()) // nil でも空配列で返す
	})
}

func TestHabitHandler_GetHabit(t *testing.T) {
	userID := uuid.New()
	habitID := uuid.New()

	t.Run("正常系: 習慣を取得できる", func(t *testing.T) {
		router, mockService := setupHabitRouter(t)

		mockService.On("GetHabit", mock.Anything, userID, habitID).
			Return(&model.Habit{HabitID: habitID, UserID: userID, Name: "読書"}, nil).Once()

		req := createRequest(t, http.MethodGet, "/api/v1/habits/"+habitID.String(), &userID, nil)
		rr := sendRequest(router, req)

		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("異常系: 存在しない習慣は404", func(t *testing.T) {
		router, mockService := setupHabitRouter(t)

		mockService.On("GetHabit", mock.Anything, userID, habitID).
			Return(nil, model.ErrNotFound).Once()

		req := createRequest(t, http.MethodGet, "/api/v1/habits/"+habitID.String(), &userID, nil)
		rr := sendRequest(router, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("異常系: UUIDでないIDは400", func(t *testing.T) {
		router, _ := setupHabitRouter(t)

		req := createRequest(t, http.MethodGet, "/api/v1/habits/not-a-uuid", &userID, nil)
		rr := sendRequest(router, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHabitHandler_PatchHabit(t *testing.T) {
	userID := uuid.New()
	habitID := uuid.New()

	t.Run("正常系: 部分更新に成功する", func(t *testing.T) {
		router, mockService := setupHabitRouter(t)

		mockService.On("PatchHabit", mock.Anything, userID, habitID, mock.AnythingOfType("*model.PatchHabitRequest")).
			Run(func(args mock.Arguments) {
				req := args.Get(3).(*model.PatchHabitRequest)
				require.NotNil(t, req.Name)
				assert.Equal(t, "多読", *req.Name)
				assert.Nil(t, req.Emoji)
			}).
			Return(&model.Habit{HabitID: habitID, UserID: userID, Name: "多読"}, nil).Once()

		req := createRequest(t, http.MethodPatch, "/api/v1/habits/"+habitID.String(), &userID, map[string]interface{}{"name": "多読"})
		rr := sendRequest(router, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got model.Habit
		decodeBody(t, rr, &got)
		assert.Equal(t, "多読", got.Name)
	})
}

func TestHabitHandler_DeleteHabit(t *testing.T) {
	userID := uuid.New()
	habitID := uuid.New()

	t.Run("正常系: アーカイブ成功で204", func(t *testing.T) {
		router, mockService := setupHabitRouter(t)

		mockService.On("ArchiveHabit", mock.Anything, userID, habitID).Return(nil).Once()

		req := createRequest(t, http.MethodDelete, "/api/v1/habits/"+habitID.String(), &userID, nil)
		rr := sendRequest(router, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("異常系: 存在しない習慣は404", func(t *testing.T) {
		router, mockService := setupHabitRouter(t)

		mockService.On("ArchiveHabit", mock.Anything, userID, habitID).Return(model.ErrNotFound).Once()

		req := createRequest(t, http.MethodDelete, "/api/v1/habits/"+habitID.String(), &userID, nil)
		rr := sendRequest(router, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
