package domain

// User is an identity on the platform. There is no authentication;
// selecting a user from the roster is what "logging in" means. Points are
// the wallet balance spent on contests and earned through adoption.
type User struct {
	ID       uint   `json:"id"`
	Nickname string `json:"nickname"`
	Points   int    `json:"points"`
}
