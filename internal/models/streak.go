package kudos

import "time"

// Начало текущих суток по локальному времени процесса
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(time.Local).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// Бонус за серию: 10% от суммы, минимум 1
func StreakBonus(requested int64) int64 {
	bonus := requested / 10
	if bonus < 1 {
		bonus = 1
	}
	return bonus
}

// Расчет перевода: сколько начислить получателю и новая серия отправителя
func CreditedAmount(requested int64, streak bool, streakCount int64) (credited int64, newStreak int64) {
	if !streak {
		return requested, 1
	}
	return requested + StreakBonus(requested), streakCount + 1
}
