// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "HabitKeep"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort       = ":8080"
	DefaultLogLevel         = "info"
	DefaultWeekStart        = "monday"
	DefaultJWTExpiryMinutes = 60
)

// 集計まわりのデフォルト値
const (
	DefaultWeeklyTarget  = 7
	DefaultMonthlyTarget = 30
	// 全習慣ビューの固定位置週バケットの最大数
	MaxAnalyticsWeeks = 5
	// 閾値が未設定の場合に使う達成閾値 (ALL 相当)
	DefaultCompletionThreshold = 100
)
