package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/loca-app/loca-go/internal/domain"
)

type SortOrder string

const (
	SortLatest  SortOrder = "latest"
	SortByLikes SortOrder = "likes"
)

// ListPhotosOptions filter and page a photo listing. Zero KeywordID or
// UserID means "any"; zero Limit means DefaultPageSize.
type ListPhotosOptions struct {
	KeywordID uint
	UserID    uint
	Limit     int
	Offset    int
}

// ListPhotos fetches photos most-recent-first, optionally narrowed to a
// keyword, a user, or both. Limit and offset always go on the wire.
func (c *Client) ListPhotos(ctx context.Context, opts ListPhotosOptions) ([]domain.Photo, error) {
	query := url.Values{}
	if opts.KeywordID != 0 {
		query.Set("keyword_id", strconv.FormatUint(uint64(opts.KeywordID), 10))
	}
	if opts.UserID != 0 {
		query.Set("user_id", strconv.FormatUint(uint64(opts.UserID), 10))
	}
	setPaging(query, opts.Limit, opts.Offset)

	var photos []domain.Photo
	if err := c.getJSON(ctx, "list photos", "/photos/", query, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// SearchPhotosOptions page and order a photo search. Zero SortBy means
// SortLatest.
type SearchPhotosOptions struct {
	SortBy SortOrder
	Limit  int
	Offset int
}

// SearchPhotos runs a full-text search over photo metadata.
func (c *Client) SearchPhotos(ctx context.Context, q string, opts SearchPhotosOptions) ([]domain.Photo, error) {
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = SortLatest
	}

	query := url.Values{}
	query.Set("q", q)
	query.Set("sort_by", string(sortBy))
	setPaging(query, opts.Limit, opts.Offset)

	var photos []domain.Photo
	if err := c.getJSON(ctx, "search photos", "/search/photos", query, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// LikePhoto records one like. The backend does NOT de-duplicate: calling
// this twice for the same pair double-counts. Route calls through
// LikedPhotos.Toggle so local state can stop the duplicate.
func (c *Client) LikePhoto(ctx context.Context, photoID, userID uint) error {
	query := url.Values{}
	query.Set("user_id", strconv.FormatUint(uint64(userID), 10))

	return c.doJSON(ctx, "like photo", http.MethodPost, fmt.Sprintf("/photos/%v/like", photoID), query, nil, "", nil)
}

// UnlikePhoto removes a like. Behavior without a prior like is up to the
// server; the client sends the request as asked.
func (c *Client) UnlikePhoto(ctx context.Context, photoID, userID uint) error {
	query := url.Values{}
	query.Set("user_id", strconv.FormatUint(uint64(userID), 10))

	return c.doJSON(ctx, "unlike photo", http.MethodDelete, fmt.Sprintf("/photos/%v/like", photoID), query, nil, "", nil)
}

// DeletePhoto removes a photo by id. Ownership is enforced server-side.
func (c *Client) DeletePhoto(ctx context.Context, photoID uint) error {
	return c.doJSON(ctx, "delete photo", http.MethodDelete, fmt.Sprintf("/photos/%v", photoID), nil, nil, "", nil)
}

func setPaging(query url.Values, limit, offset int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
}
