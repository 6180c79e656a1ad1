// internal/service/rule_test.go
package service

import (
	"testing"

	"go_5_habit_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// outcomes は (completed, points) のペア列からテスト用の実績を組み立てるヘルパー
func outcomes(pairs ...struct {
	done   bool
	points float64
}) []*model.SubTaskOutcome {
	out := make([]*model.SubTaskOutcome, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, &model.SubTaskOutcome{
			OutcomeID: uuid.New(),
			Completed: p.done,
			Points:    p.points,
		})
	}
	return out
}

type oc = struct {
	done   bool
	points float64
}

func Test_EvaluateDay_All(t *testing.T) {
	tests := []struct {
		name       string
		outcomes   []*model.SubTaskOutcome
		wantDone   bool
		wantCredit int
	}{
		{
			name:       "正常系: 全サブタスク完了で達成",
			outcomes:   outcomes(oc{true, 0}, oc{true, 0}, oc{true, 0}),
			wantDone:   true,
			wantCredit: 100,
		},
		{
			name:       "正常系: 1件でも未完了なら未達成",
			outcomes:   outcomes(oc{true, 0}, oc{false, 0}),
			wantDone:   false,
			wantCredit: 50,
		},
		{
			name:       "正常系: 実績0件は空虚に真",
			outcomes:   nil,
			wantDone:   true,
			wantCredit: 100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done, credit := EvaluateDay(model.RuleAll, 100, tt.outcomes)
			assert.Equal(t, tt.wantDone, done)
			assert.Equal(t, tt.wantCredit, credit)
		})
	}
}

func Test_EvaluateDay_Percentage(t *testing.T) {
	tests := []struct {
		name       string
		threshold  int
		outcomes   []*model.SubTaskOutcome
		wantDone   bool
		wantCredit int
	}{
		{
			name:      "正常系: 4件中3件完了 (75%) は閾値70で達成",
			threshold: 70,
			outcomes: outcomes(
				oc{true, 0}, oc{true, 0}, oc{true, 0}, oc{false, 0},
			),
			wantDone:   true,
			wantCredit: 75,
		},
		{
			name:       "正常系: 閾値ちょうどは達成 (>= 判定)",
			threshold:  50,
			outcomes:   outcomes(oc{true, 0}, oc{false, 0}),
			wantDone:   true,
			wantCredit: 50,
		},
		{
			name:       "正常系: 閾値未満は未達成",
			threshold:  80,
			outcomes:   outcomes(oc{true, 0}, oc{false, 0}),
			wantDone:   false,
			wantCredit: 50,
		},
		{
			name:       "境界系: 実績0件は credit 0 で未達成 (空虚な真にしない)",
			threshold:  1,
			outcomes:   nil,
			wantDone:   false,
			wantCredit: 0,
		},
		{
			name:      "境界系: 3件中2件 (66.67%) は四捨五入で 67",
			threshold: 67,
			outcomes:  outcomes(oc{true, 0}, oc{true, 0}, oc{false, 0}),
			wantDone:  true, wantCredit: 67,
		},
		{
			name:       "異常系: 範囲外の閾値は100扱い",
			threshold:  0,
			outcomes:   outcomes(oc{true, 0}, oc{false, 0}),
			wantDone:   false,
			wantCredit: 50,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done, credit := EvaluateDay(model.RulePercentage, tt.threshold, tt.outcomes)
			assert.Equal(t, tt.wantDone, done)
			assert.Equal(t, tt.wantCredit, credit)
		})
	}
}

func Test_EvaluateDay_Points(t *testing.T) {
	tests := []struct {
		name       string
		threshold  int
		outcomes   []*model.SubTaskOutcome
		wantDone   bool
		wantCredit int
	}{
		{
			name:      "正常系: ポイントの重みで判定する",
			threshold: 60,
			outcomes: outcomes(
				oc{true, 30}, oc{false, 10}, oc{true, 10},
			), // 40/50 = 80%
			wantDone:   true,
			wantCredit: 80,
		},
		{
			name:       "境界系: 全ポイント合計0は未達成",
			threshold:  50,
			outcomes:   outcomes(oc{true, 0}, oc{true, 0}),
			wantDone:   false,
			wantCredit: 0,
		},
		{
			name:       "境界系: 実績0件は未達成",
			threshold:  50,
			outcomes:   nil,
			wantDone:   false,
			wantCredit: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done, credit := EvaluateDay(model.RulePoints, tt.threshold, tt.outcomes)
			assert.Equal(t, tt.wantDone, done)
			assert.Equal(t, tt.wantCredit, credit)
		})
	}
}

func Test_EvaluateDay_UnknownRule(t *testing.T) {
	// 未知のルール値は ALL として扱う (エラーにしない)
	done, credit := EvaluateDay(model.ProgressRule("STREAK"), 100, outcomes(oc{true, 0}))
	assert.True(t, done)
	assert.Equal(t, 100, credit)
}

func Test_EvaluateEntry(t *testing.T) {
	tests := []struct {
		name       string
		habit      *model.Habit
		entry      *model.Entry
		outcomes   []*model.SubTaskOutcome
		wantDone   bool
		wantCredit int
	}{
		{
			name:       "正常系: サブタスク無しの習慣はエントリのフラグがそのまま結果",
			habit:      &model.Habit{HasSubTasks: false},
			entry:      &model.Entry{Completed: true},
			wantDone:   true,
			wantCredit: 100,
		},
		{
			name:       "正常系: サブタスク無しで未完了フラグ",
			habit:      &model.Habit{HasSubTasks: false},
			entry:      &model.Entry{Completed: false},
			wantDone:   false,
			wantCredit: 0,
		},
		{
			name: "正常系: サブタスク有りはルール評価が優先 (フラグは見ない)",
			habit: &model.Habit{
				HasSubTasks:         true,
				ProgressRule:        model.RulePercentage,
				CompletionThreshold: 50,
			},
			entry:      &model.Entry{Completed: false},
			outcomes:   outcomes(oc{true, 0}, oc{false, 0}),
			wantDone:   true,
			wantCredit: 50,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done, credit := EvaluateEntry(tt.habit, tt.entry, tt.outcomes)
			assert.Equal(t, tt.wantDone, done)
			assert.Equal(t, tt.wantCredit, credit)
		})
	}
}

func Test_roundPercent(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want int
	}{
		{name: "正常系: 割り切れる値", a: 1, b: 2, want: 50},
		{name: "正常系: 0.5 は切り上げ (half away from zero)", a: 1, b: 200, want: 1},
		{name: "正常系: 2/3 は 67", a: 2, b: 3, want: 67},
		{name: "正常系: 1/3 は 33", a: 1, b: 3, want: 33},
		{name: "境界系: 分母0は常に0", a: 5, b: 0, want: 0},
		{name: "境界系: 分子0は0", a: 0, b: 10, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, roundPercent(tt.a, tt.b))
		})
	}
}
