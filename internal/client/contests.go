package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/loca-app/loca-go/internal/client/request"
	"github.com/loca-app/loca-go/internal/domain"
)

// CreateContest creates an active contest on behalf of userID. The server
// validates the reward (positive multiple of 100, within the creator's
// balance) and debits it atomically; the client sends the request as given
// so server rejections surface as *APIError. Call req.Validate first for
// an early local hint.
func (c *Client) CreateContest(ctx context.Context, req request.CreateContestRequest, userID uint) (domain.Contest, error) {
	query := url.Values{}
	query.Set("user_id", strconv.FormatUint(uint64(userID), 10))

	var contest domain.Contest
	if err := c.postJSON(ctx, "create contest", "/contests/", query, req, &contest); err != nil {
		return domain.Contest{}, err
	}
	return contest, nil
}

// ListContestsOptions page a contest listing. Empty Status means every
// status; zero Limit means DefaultPageSize.
type ListContestsOptions struct {
	Status domain.ContestStatus
	Limit  int
	Offset int
}

// ListContests fetches contests, optionally narrowed to one status.
func (c *Client) ListContests(ctx context.Context, opts ListContestsOptions) ([]domain.Contest, error) {
	return c.listContests(ctx, "list contests", opts, 0, false)
}

// ListMyContests fetches contests created by userID.
func (c *Client) ListMyContests(ctx context.Context, userID uint, opts ListContestsOptions) ([]domain.Contest, error) {
	return c.listContests(ctx, "list my contests", opts, userID, false)
}

// ListAppliedContests fetches contests userID has submitted a photo to.
func (c *Client) ListAppliedContests(ctx context.Context, userID uint, opts ListContestsOptions) ([]domain.Contest, error) {
	return c.listContests(ctx, "list applied contests", opts, userID, true)
}

// The three contest views ride the same endpoint: user_id alone narrows to
// contests the user created, user_id plus filter=applied narrows to
// contests the user submitted to.
func (c *Client) listContests(ctx context.Context, op string, opts ListContestsOptions, userID uint, applied bool) ([]domain.Contest, error) {
	query := url.Values{}
	if opts.Status != "" {
		query.Set("status", string(opts.Status))
	}
	if userID != 0 {
		query.Set("user_id", strconv.FormatUint(uint64(userID), 10))
	}
	if applied {
		query.Set("filter", "applied")
	}
	setPaging(query, opts.Limit, opts.Offset)

	var contests []domain.Contest
	if err := c.getJSON(ctx, op, "/contests/", query, &contests); err != nil {
		return nil, err
	}
	return contests, nil
}

// DeleteContest cancels a contest. Only the creator may do this; the
// server enforces ownership and rejects everyone else.
func (c *Client) DeleteContest(ctx context.Context, contestID, userID uint) error {
	query := url.Values{}
	query.Set("user_id", strconv.FormatUint(uint64(userID), 10))

	return c.doJSON(ctx, "delete contest", http.MethodDelete, fmt.Sprintf("/contests/%v", contestID), query, nil, "", nil)
}

// GetContestPhotos fetches every submission for a contest.
func (c *Client) GetContestPhotos(ctx context.Context, contestID uint) ([]domain.ContestPhoto, error) {
	var photos []domain.ContestPhoto
	if err := c.getJSON(ctx, "get contest photos", fmt.Sprintf("/contests/%v/photos", contestID), nil, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// SelectContestPhoto adopts a submission as the winner. Creator-only; the
// server completes the contest and transfers the reward to the submitter.
func (c *Client) SelectContestPhoto(ctx context.Context, contestID, photoID, userID uint) error {
	query := url.Values{}
	query.Set("photo_id", strconv.FormatUint(uint64(photoID), 10))
	query.Set("user_id", strconv.FormatUint(uint64(userID), 10))

	return c.doJSON(ctx, "select contest photo", http.MethodPost, fmt.Sprintf("/contests/%v/select", contestID), query, nil, "", nil)
}
