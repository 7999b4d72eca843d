package domain

import "time"

type ContestStatus string

const (
	ContestActive    ContestStatus = "active"
	ContestCompleted ContestStatus = "completed"
	ContestCancelled ContestStatus = "cancelled"
)

// Contest is a point-rewarded challenge. It is created active and moves to
// completed (a submission was adopted) or cancelled (creator deleted it).
// Transitions are one-directional; a closed contest never reopens.
type Contest struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Points      int           `json:"points"`
	Deadline    string        `json:"deadline"`
	UserID      uint          `json:"user_id"`
	Status      ContestStatus `json:"status"`
	CreatedAt   string        `json:"created_at"`
	PhotoCount  int           `json:"photo_count"`
}

func (c *Contest) IsActive() bool {
	return c.Status == ContestActive
}

// Complete marks an adopted contest as finished. Returns false without
// changing anything when the contest is not active.
func (c *Contest) Complete() bool {
	if c.Status != ContestActive {
		return false
	}
	c.Status = ContestCompleted
	return true
}

// Cancel closes a contest without a winner. Returns false without changing
// anything when the contest is not active.
func (c *Contest) Cancel() bool {
	if c.Status != ContestActive {
		return false
	}
	c.Status = ContestCancelled
	return true
}

// DeadlinePassed reports whether the contest deadline is behind now.
// An unparseable deadline counts as not passed.
func (c *Contest) DeadlinePassed(now time.Time) bool {
	deadline, err := time.Parse(time.RFC3339, c.Deadline)
	if err != nil {
		return false
	}
	return deadline.Before(now)
}

// ValidRewardPoints reports whether points is a positive multiple of 100,
// the convention every contest reward must follow.
func ValidRewardPoints(points int) bool {
	return points > 0 && points%100 == 0
}

// ContestPhoto is one submission to a contest. By convention a user submits
// at most once per contest; the server owns that rule.
type ContestPhoto struct {
	ID           uint   `json:"id"`
	ContestID    uint   `json:"contest_id"`
	UserID       uint   `json:"user_id"`
	UserNickname string `json:"user_nickname"`
	ImagePath    string `json:"image_path"`
	Location     string `json:"location,omitempty"`
	Description  string `json:"description,omitempty"`
	SubmittedAt  string `json:"submitted_at"`
}
