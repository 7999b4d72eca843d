package domain

import "time"

// Keyword is a short prompt/theme shown to users as photo-taking
// inspiration. IDs are assigned by the server; the client never mutates one.
type Keyword struct {
	ID       uint   `json:"id"`
	Keyword  string `json:"keyword"`
	Category string `json:"category,omitempty"`
}

type TimePeriod string

const (
	PeriodMorning TimePeriod = "morning"
	PeriodEvening TimePeriod = "evening"
)

// PeriodForTime maps a local time to the keyword period. Hours in [7, 19)
// count as morning, everything else as evening. The boundary is a
// client-side policy; the server accepts either value at any hour.
func PeriodForTime(t time.Time) TimePeriod {
	if h := t.Hour(); h >= 7 && h < 19 {
		return PeriodMorning
	}
	return PeriodEvening
}
