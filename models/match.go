package models

import "time"

// Match — бой двух боксёров внутри весовой категории.
//
// MatchDate и MatchTime хранятся отдельно: календарная дата служит ключом
// группировки (календарь, список боёв на день), а полный момент времени идёт
// в полезную нагрузку. Оба поля строятся в одном месте (CombineDateTime),
// чтобы они не могли разойтись.
type Match struct {
	ID            string    `json:"id"`
	WeightClassID string    `json:"weight_class_id"`
	Boxer1ID      string    `json:"boxer1_id"`
	Boxer2ID      string    `json:"boxer2_id"`
	MatchDate     time.Time `json:"match_date"`
	MatchTime     time.Time `json:"match_time"`
}

// CombineDateTime merges a calendar day and a time of day into the pair of
// fields a Match stores. The returned date is truncated to midnight UTC, the
// returned instant carries the hour and minute on that same day.
func CombineDateTime(day time.Time, hour, minute int) (matchDate, matchTime time.Time) {
	matchDate = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	matchTime = time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
	return matchDate, matchTime
}
