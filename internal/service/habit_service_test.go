// internal/service/habit_service_test.go
package service

import (
	"context"
	"testing"

	"go_5_habit_keep/internal/model"
	"go_5_habit_keep/internal/repository/mocks" // モックリポジトリのパス

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---
func setupTestDBHabit() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// --- Test CreateHabit ---
func Test_habitService_CreateHabit(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBHabit() // トランザクション用DB (インメモリ)
	userID := uuid.New()

	tests := []struct {
		name      string
		req       *model.PostHabitRequest
		setupMock func(habitRepo *mocks.HabitRepository)
		wantErr   error
		check     func(t *testing.T, habit *model.Habit)
	}{
		{
			name: "正常系: デフォルト値で作成成功",
			req:  &model.PostHabitRequest{Name: "読書"},
			setupMock: func(habitRepo *mocks.HabitRepository) {
				habitRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Habit")).
					Run(func(args mock.Arguments) {
						habit := args.Get(2).(*model.Habit)
						assert.Equal(t, userID, habit.UserID)
						assert.Equal(t, "読書", habit.Name)
						assert.NotEqual(t, uuid.Nil, habit.HabitID) // IDがセットされるはず
					}).Return(nil).Once()
			},
			wantErr: nil,
			check: func(t *testing.T, habit *model.Habit) {
				// 未指定項目はデフォルト値で埋まる
				assert.Equal(t, "daily", habit.Frequency)
				assert.Equal(t, 7, habit.WeeklyTarget)
				assert.Equal(t, 30, habit.MonthlyTarget)
				assert.Equal(t, model.RuleAll, habit.ProgressRule)
				assert.Equal(t, 100, habit.CompletionThreshold)
				assert.False(t, habit.Archived)
			},
		},
		{
			name: "正常系: ルールと閾値を指定して作成",
			req: &model.PostHabitRequest{
				Name:                "筋トレ",
				HasSubTasks:         true,
				ProgressRule:        strPtr("PERCENTAGE"),
				CompletionThreshold: intPtr(70),
				WeeklyTarget:        intPtr(5),
			},
			setupMock: func(habitRepo *mocks.HabitRepository) {
				habitRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Habit")).
					Return(nil).Once()
			},
			wantErr: nil,
			check: func(t *testing.T, habit *model.Habit) {
				assert.True(t, habit.HasSubTasks)
				assert.Equal(t, model.RulePercentage, habit.ProgressRule)
				assert.Equal(t, 70, habit.CompletionThreshold)
				assert.Equal(t, 5, habit.WeeklyTarget)
			},
		},
		{
			name: "異常系: リポジトリエラーは内部エラーに変換",
			req:  &model.PostHabitRequest{Name: "散歩"},
			setupMock: func(habitRepo *mocks.HabitRepository) {
				habitRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Habit")).
					Return(gorm.ErrInvalidTransaction).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockHabitRepo := new(mocks.HabitRepository)
			tt.setupMock(mockHabitRepo)
			habitService := NewHabitService(db, mockHabitRepo)

			habit, err := habitService.CreateHabit(ctx, userID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, habit)
			} else {
				require.NoError(t, err)
				require.NotNil(t, habit)
				if tt.check != nil {
					tt.check(t, habit)
				}
			}
			mockHabitRepo.AssertExpectations(t)
		})
	}
}

// --- Test PatchHabit ---
func Test_habitService_PatchHabit(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBHabit()
	userID := uuid.New()
	habitID := uuid.New()

	existing := &model.Habit{
		HabitID: habitID,
		UserID:  userID,
		Name:    "読書",
	}

	tests := []struct {
		name      string
		req       *model.PatchHabitRequest
		setupMock func(habitRepo *mocks.HabitRepository)
		wantErr   error
	}{
		{
			name: "正常系: 指定された項目だけが更新される",
			req: &model.PatchHabitRequest{
				Name:        strPtr("多読"),
				HasSubTasks: boolPtr(true),
			},
			setupMock: func(habitRepo *mocks.HabitRepository) {
				habitRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, habitID).
					Return(existing, nil).Once()
				habitRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), userID, habitID, mock.AnythingOfType("map[string]interface {}")).
					Run(func(args mock.Arguments) {
						updates := args.Get(4).(map[string]interface{})
						assert.Equal(t, "多読", updates["name"])
						assert.Equal(t, true, updates["has_sub_tasks"])
						assert.NotContains(t, updates, "emoji") // 未指定項目は触らない
					}).Return(nil).Once()
				habitRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, habitID).
					Return(&model.Habit{HabitID: habitID, UserID: userID, Name: "多読", HasSubTasks: true}, nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "正常系: 空のパッチは更新をスキップして現状を返す",
			req:  &model.PatchHabitRequest{},
			setupMock: func(habitRepo *mocks.HabitRepository) {
				habitRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, habitID).
					Return(existing, nil).Twice()
				// Update は呼ばれないはず
			},
			wantErr: nil,
		},
		{
			name: "異常系: 存在しない習慣",
			req:  &model.PatchHabitRequest{Name: strPtr("多読")},
			setupMock: func(habitRepo *mocks.HabitRepository) {
				habitRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, habitID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockHabitRepo := new(mocks.HabitRepository)
			tt.setupMock(mockHabitRepo)
			habitService := NewHabitService(db, mockHabitRepo)

			habit, err := habitService.PatchHabit(ctx, userID, habitID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.NotNil(t, habit)
			}
			mockHabitRepo.AssertExpectations(t)
		})
	}
}

// --- Test ArchiveHabit ---
func Test_habitService_ArchiveHabit(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBHabit()
	userID := uuid.New()
	habitID := uuid.New()

	tests := []struct {
		name      string
		setupMock func(habitRepo *mocks.HabitRepository)
		wantErr   error
	}{
		{
			name: "正常系: アーカイブ成功",
			setupMock: func(habitRepo *mocks.HabitRepository) {
				habitRepo.On("Archive", ctx, mock.AnythingOfType("*gorm.DB"), userID, habitID).
					Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: 存在しない習慣",
			setupMock: func(habitRepo *mocks.HabitRepository) {
				habitRepo.On("Archive", ctx, mock.AnythingOfType("*gorm.DB"), userID, habitID).
					Return(model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockHabitRepo := new(mocks.HabitRepository)
			tt.setupMock(mockHabitRepo)
			habitService := NewHabitService(db, mockHabitRepo)

			err := habitService.ArchiveHabit(ctx, userID, habitID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			mockHabitRepo.AssertExpectations(t)
		})
	}
}
