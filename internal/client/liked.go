package client

import (
	"context"
	"sync"
)

// LikedPhotos records which photos the current user has already liked.
// The backend does not de-duplicate like calls, so this local record is
// the mechanism that prevents double counting: required state, not an
// optimization.
type LikedPhotos struct {
	mu  sync.Mutex
	ids map[uint]struct{}
}

func NewLikedPhotos(photoIDs ...uint) *LikedPhotos {
	ids := make(map[uint]struct{}, len(photoIDs))
	for _, id := range photoIDs {
		ids[id] = struct{}{}
	}
	return &LikedPhotos{ids: ids}
}

// Liked reports whether photoID is marked liked locally.
func (l *LikedPhotos) Liked(photoID uint) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.ids[photoID]
	return ok
}

// Toggle flips the like state of photoID for userID, issuing exactly the
// one backend call the local state says is missing. The tracker stays
// locked for the duration, so rapid repeated toggles serialize instead of
// double-counting. Local state only changes after the call succeeds.
func (l *LikedPhotos) Toggle(ctx context.Context, c *Client, photoID, userID uint) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, liked := l.ids[photoID]; liked {
		if err := c.UnlikePhoto(ctx, photoID, userID); err != nil {
			return true, err
		}
		delete(l.ids, photoID)
		return false, nil
	}

	if err := c.LikePhoto(ctx, photoID, userID); err != nil {
		return false, err
	}
	l.ids[photoID] = struct{}{}
	return true, nil
}
