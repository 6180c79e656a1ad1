// internal/model/analytics.go
package model

import "time"

// DailyBucket は1日分の集計です (永続化しない派生データ)。
// エントリが1件もない日も total=0, completed=0, percentage=0 で必ず出力します。
// グラフ描画側が連続した日付列に依存するため、空の日を飛ばしてはいけません。
type DailyBucket struct {
	Date       string `json:"date"` // YYYY-MM-DD
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

// WeeklyBucket は全習慣ビュー用の固定位置週バケットです。
// week k (1始まり) は範囲先頭からの日オフセット [7(k-1), 7k-1] を覆います。
// ISO週ではなくオフセットベースのウィンドウであることに注意 (互換性のため)。
type WeeklyBucket struct {
	Week       int `json:"week"` // 1..5
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// HabitWeekBucket は単一習慣ビュー用のカレンダー週バケットです。
// 設定された週の開始曜日に揃え、範囲に触れるカレンダー週ごとに1件できます。
type HabitWeekBucket struct {
	WeekStart  time.Time `json:"-"`
	Completed  int       `json:"completed"`
	Total      int       `json:"total"`
	Percentage int       `json:"percentage"`
}

// MonthlyAnalyticsResponse は月次アナリティクスAPIのレスポンスDTO
type MonthlyAnalyticsResponse struct {
	Daily  []DailyBucket  `json:"daily"`
	Weekly []WeeklyBucket `json:"weekly"`
}
