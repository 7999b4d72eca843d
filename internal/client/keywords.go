package client

import (
	"context"
	"net/url"
	"strings"

	"github.com/loca-app/loca-go/internal/domain"
)

// ListKeywords fetches the full keyword catalog. The catalog is small
// enough that the backend does not paginate it.
func (c *Client) ListKeywords(ctx context.Context) ([]domain.Keyword, error) {
	var keywords []domain.Keyword
	if err := c.getJSON(ctx, "list keywords", "/keywords/", nil, &keywords); err != nil {
		return nil, err
	}
	return keywords, nil
}

// RandomKeyword asks the server to pick one keyword uniformly at random.
func (c *Client) RandomKeyword(ctx context.Context) (domain.Keyword, error) {
	var keyword domain.Keyword
	if err := c.getJSON(ctx, "random keyword", "/keywords/random", nil, &keyword); err != nil {
		return domain.Keyword{}, err
	}
	return keyword, nil
}

// TimeBasedKeyword fetches a keyword fitting the given period. Use
// domain.PeriodForTime to derive the period from the local clock.
func (c *Client) TimeBasedKeyword(ctx context.Context, period domain.TimePeriod) (domain.Keyword, error) {
	query := url.Values{}
	query.Set("time_type", string(period))

	var keyword domain.Keyword
	if err := c.getJSON(ctx, "time-based keyword", "/keywords/time-based", query, &keyword); err != nil {
		return domain.Keyword{}, err
	}
	return keyword, nil
}

// SearchKeywords matches keywords against q. An empty query means the full
// catalog, so it is answered by ListKeywords without a search round-trip.
func (c *Client) SearchKeywords(ctx context.Context, q string) ([]domain.Keyword, error) {
	if strings.TrimSpace(q) == "" {
		return c.ListKeywords(ctx)
	}

	query := url.Values{}
	query.Set("q", q)

	var keywords []domain.Keyword
	if err := c.getJSON(ctx, "search keywords", "/search/keywords", query, &keywords); err != nil {
		return nil, err
	}
	return keywords, nil
}
