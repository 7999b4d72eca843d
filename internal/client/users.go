package client

import (
	"context"
	"fmt"

	"github.com/loca-app/loca-go/internal/domain"
)

// ListUsers fetches the full roster. The app has no authentication;
// picking an entry from this list is the login flow.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.getJSON(ctx, "list users", "/users/", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUserPoints fetches a snapshot of the user's point balance.
func (c *Client) GetUserPoints(ctx context.Context, userID uint) (int, error) {
	var balance struct {
		Points int `json:"points"`
	}
	if err := c.getJSON(ctx, "get user points", fmt.Sprintf("/users/%v/points", userID), nil, &balance); err != nil {
		return 0, err
	}
	return balance.Points, nil
}
