// internal/service/rule.go
package service

import (
	"math"

	"go_5_habit_keep/internal/config"
	"go_5_habit_keep/internal/model"
)

// EvaluateDay は、習慣の達成判定ルールとその日のサブタスク実績から、
// 1日分の達成可否と達成度 (0-100) を判定します。
//
//   - ALL:        全サブタスク完了で達成。実績0件なら空虚に真 (credit 100)。
//   - PERCENTAGE: credit = round(100 * 完了数 / 総数)。credit >= threshold で達成。
//     総数0なら未達成 (credit 0)。ゼロ除算と空の日への加点を避ける。
//   - POINTS:     credit = round(100 * 完了分のポイント / 全ポイント)。閾値判定は同上。
//     全ポイント合計が0なら未達成。
//
// ルールは常に習慣の「現在の」設定を使います。過去のエントリも再計算時は
// 現行ルールで解釈され、履歴のポイント値を遡って書き換えることはありません。
func EvaluateDay(rule model.ProgressRule, threshold int, outcomes []*model.SubTaskOutcome) (bool, int) {
	threshold = normalizeThreshold(threshold)

	switch rule {
	case model.RulePercentage:
		total := len(outcomes)
		if total == 0 {
			return false, 0
		}
		done := 0
		for _, o := range outcomes {
			if o.Completed {
				done++
			}
		}
		credit := roundPercent(float64(done), float64(total))
		return credit >= threshold, credit

	case model.RulePoints:
		var totalPoints, donePoints float64
		for _, o := range outcomes {
			totalPoints += o.Points
			if o.Completed {
				donePoints += o.Points
			}
		}
		if totalPoints == 0 {
			return false, 0
		}
		credit := roundPercent(donePoints, totalPoints)
		return credit >= threshold, credit

	default: // ALL (未知のルール値もALLとして扱う)
		if len(outcomes) == 0 {
			return true, 100
		}
		done := 0
		for _, o := range outcomes {
			if o.Completed {
				done++
			}
		}
		credit := roundPercent(float64(done), float64(len(outcomes)))
		return done == len(outcomes), credit
	}
}

// EvaluateEntry は1エントリの達成可否を判定します。
// サブタスクを持たない習慣は評価器を経由せず、エントリ自身の completed フラグが
// そのまま結果になります (credit は 100 か 0)。
func EvaluateEntry(habit *model.Habit, entry *model.Entry, outcomes []*model.SubTaskOutcome) (bool, int) {
	if !habit.HasSubTasks {
		if entry.Completed {
			return true, 100
		}
		return false, 0
	}
	return EvaluateDay(habit.ProgressRule, habit.CompletionThreshold, outcomes)
}

// normalizeThreshold は範囲外・未設定の閾値を100に引き上げます。
// PERCENTAGE 以外のルールで閾値が無くても評価が失敗しないようにするための措置。
func normalizeThreshold(threshold int) int {
	if threshold < 1 || threshold > 100 {
		return config.DefaultCompletionThreshold
	}
	return threshold
}

// roundPercent は round(100 * a / b) を返します。
// 丸めは四捨五入 (half away from zero)。b = 0 は常に 0 で、エラーにはなりません。
func roundPercent(a, b float64) int {
	if b == 0 {
		return 0
	}
	return int(math.Round(100 * a / b))
}
