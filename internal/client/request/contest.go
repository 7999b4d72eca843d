package request

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/loca-app/loca-go/internal/domain"
)

// CreateContestRequest is the JSON body of a contest creation. Validate
// mirrors the server's rules as a UI hint; the server stays authoritative
// and re-checks everything, including the creator's balance.
type CreateContestRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Deadline    string `json:"deadline"`
}

func (req *CreateContestRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.Points, validation.Required, validation.By(validRewardPoints)),
		validation.Field(&req.Deadline, validation.Required, validation.Date(time.RFC3339)),
	)
}

func validRewardPoints(value interface{}) error {
	points, ok := value.(int)
	if !ok {
		return fmt.Errorf("must be an integer")
	}
	if !domain.ValidRewardPoints(points) {
		return fmt.Errorf("must be a positive multiple of 100")
	}
	return nil
}
