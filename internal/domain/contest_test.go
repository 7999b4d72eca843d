package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/loca-app/loca-go/internal/domain"
)

func TestContestTransitions(t *testing.T) {
	t.Run("active completes once", func(t *testing.T) {
		c := domain.Contest{Status: domain.ContestActive}
		assert.True(t, c.Complete())
		assert.Equal(t, domain.ContestCompleted, c.Status)
		assert.False(t, c.Complete())
		assert.False(t, c.Cancel(), "completed contest never reopens")
	})

	t.Run("active cancels once", func(t *testing.T) {
		c := domain.Contest{Status: domain.ContestActive}
		assert.True(t, c.Cancel())
		assert.Equal(t, domain.ContestCancelled, c.Status)
		assert.False(t, c.Complete())
	})
}

func TestDeadlinePassed(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline string
		want     bool
	}{
		{"future", "2026-09-01T00:00:00Z", false},
		{"past", "2026-08-01T00:00:00Z", true},
		{"unparseable counts as open", "someday", false},
		{"empty counts as open", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.Contest{Deadline: tt.deadline}
			assert.Equal(t, tt.want, c.DeadlinePassed(now))
		})
	}
}

func TestValidRewardPoints(t *testing.T) {
	tests := []struct {
		points int
		want   bool
	}{
		{100, true},
		{300, true},
		{10000, true},
		{150, false},
		{0, false},
		{-100, false},
		{99, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ValidRewardPoints(tt.points), "points=%v", tt.points)
	}
}

func TestPeriodForTime(t *testing.T) {
	day := func(hour int) time.Time {
		return time.Date(2026, 8, 30, hour, 0, 0, 0, time.Local)
	}

	tests := []struct {
		hour int
		want domain.TimePeriod
	}{
		{0, domain.PeriodEvening},
		{6, domain.PeriodEvening},
		{7, domain.PeriodMorning},
		{12, domain.PeriodMorning},
		{18, domain.PeriodMorning},
		{19, domain.PeriodEvening},
		{23, domain.PeriodEvening},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.PeriodForTime(day(tt.hour)), "hour=%v", tt.hour)
	}
}
