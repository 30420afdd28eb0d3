package cache

import (
	"time"
)

// TimeUntilNext6AM は次の午前6時（インド標準時）までの期間を返します。
// 検索コンテキストのキャッシュは1日1回リフレッシュされます。
func TimeUntilNext6AM() time.Duration {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	now := time.Now().In(loc)

	// 次の午前6時を計算
	next6am := time.Date(now.Year(), now.Month(), now.Day(), 6, 0, 0, 0, loc)

	// 今日の午前6時が既に過ぎている場合は明日の午前6時を使用
	if now.After(next6am) {
		next6am = next6am.Add(24 * time.Hour)
	}

	return next6am.Sub(now)
}
