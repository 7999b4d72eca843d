package stubserver

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/loca-app/loca-go/internal/domain"
)

var (
	ErrKeywordNotFound      = errors.New("keyword not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrPhotoNotFound        = errors.New("photo not found")
	ErrContestNotFound      = errors.New("contest not found")
	ErrContestPhotoNotFound = errors.New("contest photo not found")
	ErrNotContestOwner      = errors.New("only the contest owner may do that")
	ErrContestClosed        = errors.New("contest is not active")
	ErrInvalidRewardPoints  = errors.New("points must be a positive multiple of 100")
	ErrInsufficientPoints   = errors.New("not enough points")
)

// Store keeps the whole backend state in memory behind one mutex. It
// mimics the production backend's observable contract, including the parts
// a correct client must defend against: likes are counted blindly, so two
// like calls for the same pair really do double-count.
type Store struct {
	mu sync.Mutex

	keywords      map[uint]domain.Keyword
	users         map[uint]*domain.User
	photos        map[uint]*domain.Photo
	contests      map[uint]*domain.Contest
	contestPhotos map[uint]*domain.ContestPhoto

	nextPhotoID        uint
	nextContestID      uint
	nextContestPhotoID uint

	rng *rand.Rand
	now func() time.Time
}

func NewStore() *Store {
	s := &Store{
		keywords:           make(map[uint]domain.Keyword),
		users:              make(map[uint]*domain.User),
		photos:             make(map[uint]*domain.Photo),
		contests:           make(map[uint]*domain.Contest),
		contestPhotos:      make(map[uint]*domain.ContestPhoto),
		nextPhotoID:        1,
		nextContestID:      1,
		nextContestPhotoID: 1,
		rng:                rand.New(rand.NewSource(time.Now().UnixNano())),
		now:                time.Now,
	}
	s.seed()

	return s
}

func (s *Store) seed() {
	for _, kw := range []domain.Keyword{
		{ID: 1, Keyword: "아침 햇살", Category: "morning"},
		{ID: 2, Keyword: "카페 창가", Category: "morning"},
		{ID: 3, Keyword: "골목길"},
		{ID: 4, Keyword: "노을", Category: "evening"},
		{ID: 5, Keyword: "밤거리", Category: "evening"},
	} {
		s.keywords[kw.ID] = kw
	}

	for _, u := range []domain.User{
		{ID: 1, Nickname: "지우", Points: 1000},
		{ID: 2, Nickname: "민준", Points: 500},
		{ID: 3, Nickname: "하늘", Points: 300},
	} {
		user := u
		s.users[user.ID] = &user
	}
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func (s *Store) Keywords() []domain.Keyword {
	s.mu.Lock()
	defer s.mu.Unlock()

	keywords := make([]domain.Keyword, 0, len(s.keywords))
	for _, kw := range s.keywords {
		keywords = append(keywords, kw)
	}
	sort.Slice(keywords, func(i, j int) bool { return keywords[i].ID < keywords[j].ID })

	return keywords
}

func (s *Store) RandomKeyword() (domain.Keyword, error) {
	keywords := s.Keywords()
	if len(keywords) == 0 {
		return domain.Keyword{}, ErrKeywordNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return keywords[s.rng.Intn(len(keywords))], nil
}

// TimeBasedKeyword picks among keywords tagged for the period, falling
// back to the whole catalog when none is tagged.
func (s *Store) TimeBasedKeyword(period domain.TimePeriod) (domain.Keyword, error) {
	var matched []domain.Keyword
	for _, kw := range s.Keywords() {
		if kw.Category == string(period) {
			matched = append(matched, kw)
		}
	}
	if len(matched) == 0 {
		return s.RandomKeyword()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return matched[s.rng.Intn(len(matched))], nil
}

func (s *Store) SearchKeywords(q string) []domain.Keyword {
	q = strings.ToLower(strings.TrimSpace(q))

	matched := make([]domain.Keyword, 0)
	for _, kw := range s.Keywords() {
		if q == "" || strings.Contains(strings.ToLower(kw.Keyword), q) {
			matched = append(matched, kw)
		}
	}

	return matched
}

func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users
}

func (s *Store) UserPoints(userID uint) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return 0, ErrUserNotFound
	}

	return user.Points, nil
}

func (s *Store) AddPhoto(userID, keywordID uint, filename, location string) (domain.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return domain.Photo{}, ErrUserNotFound
	}
	if _, ok := s.keywords[keywordID]; !ok {
		return domain.Photo{}, ErrKeywordNotFound
	}

	photo := &domain.Photo{
		ID:           s.nextPhotoID,
		UserID:       userID,
		UserNickname: user.Nickname,
		KeywordID:    keywordID,
		ImagePath:    "uploads/" + filename,
		Location:     location,
		UploadedAt:   s.timestamp(),
	}
	s.nextPhotoID++
	s.photos[photo.ID] = photo

	return *photo, nil
}

// Photos filters by keyword and user (zero means any) and pages the
// result, most recent first.
func (s *Store) Photos(keywordID, userID uint, limit, offset int) []domain.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()

	photos := make([]domain.Photo, 0)
	for _, p := range s.photos {
		if keywordID != 0 && p.KeywordID != keywordID {
			continue
		}
		if userID != 0 && p.UserID != userID {
			continue
		}
		photos = append(photos, *p)
	}
	sort.Slice(photos, func(i, j int) bool { return photos[i].ID > photos[j].ID })

	return page(photos, limit, offset)
}

func (s *Store) SearchPhotos(q, sortBy string, limit, offset int) []domain.Photo {
	q = strings.ToLower(strings.TrimSpace(q))

	s.mu.Lock()
	defer s.mu.Unlock()

	photos := make([]domain.Photo, 0)
	for _, p := range s.photos {
		haystack := strings.ToLower(p.Location + " " + p.AIDescription + " " + p.UserNickname)
		if q == "" || strings.Contains(haystack, q) {
			photos = append(photos, *p)
		}
	}

	if sortBy == "likes" {
		sort.Slice(photos, func(i, j int) bool {
			if photos[i].LikeCount != photos[j].LikeCount {
				return photos[i].LikeCount > photos[j].LikeCount
			}
			return photos[i].ID > photos[j].ID
		})
	} else {
		sort.Slice(photos, func(i, j int) bool { return photos[i].ID > photos[j].ID })
	}

	return page(photos, limit, offset)
}

// LikePhoto increments the counter unconditionally. No per-user
// de-duplication on purpose; clients own that guard.
func (s *Store) LikePhoto(photoID, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	photo, ok := s.photos[photoID]
	if !ok {
		return ErrPhotoNotFound
	}
	if _, ok := s.users[userID]; !ok {
		return ErrUserNotFound
	}
	photo.LikeCount++

	return nil
}

func (s *Store) UnlikePhoto(photoID, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	photo, ok := s.photos[photoID]
	if !ok {
		return ErrPhotoNotFound
	}
	if _, ok := s.users[userID]; !ok {
		return ErrUserNotFound
	}
	if photo.LikeCount > 0 {
		photo.LikeCount--
	}

	return nil
}

func (s *Store) DeletePhoto(photoID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.photos[photoID]; !ok {
		return ErrPhotoNotFound
	}
	delete(s.photos, photoID)

	return nil
}

// CreateContest enforces the reward invariants and debits the creator in
// the same critical section, so balance and contest never diverge.
func (s *Store) CreateContest(title, description string, points int, deadline string, userID uint) (domain.Contest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return domain.Contest{}, ErrUserNotFound
	}
	if !domain.ValidRewardPoints(points) {
		return domain.Contest{}, ErrInvalidRewardPoints
	}
	if points > user.Points {
		return domain.Contest{}, ErrInsufficientPoints
	}

	user.Points -= points
	contest := &domain.Contest{
		ID:          s.nextContestID,
		Title:       title,
		Description: description,
		Points:      points,
		Deadline:    deadline,
		UserID:      userID,
		Status:      domain.ContestActive,
		CreatedAt:   s.timestamp(),
	}
	s.nextContestID++
	s.contests[contest.ID] = contest

	return *contest, nil
}

// expire moves an active contest to completed once its deadline passes.
// Callers must hold s.mu.
func (s *Store) expire(c *domain.Contest) {
	if c.IsActive() && c.DeadlinePassed(s.now()) {
		c.Complete()
	}
}

// Contests filters by status and user. With applied set, userID narrows to
// contests the user has submitted to; otherwise it narrows to contests the
// user created.
func (s *Store) Contests(status domain.ContestStatus, userID uint, applied bool, limit, offset int) []domain.Contest {
	s.mu.Lock()
	defer s.mu.Unlock()

	appliedTo := make(map[uint]bool)
	if applied && userID != 0 {
		for _, cp := range s.contestPhotos {
			if cp.UserID == userID {
				appliedTo[cp.ContestID] = true
			}
		}
	}

	contests := make([]domain.Contest, 0)
	for _, c := range s.contests {
		s.expire(c)
		if status != "" && c.Status != status {
			continue
		}
		if userID != 0 {
			if applied {
				if !appliedTo[c.ID] {
					continue
				}
			} else if c.UserID != userID {
				continue
			}
		}
		contests = append(contests, *c)
	}
	sort.Slice(contests, func(i, j int) bool { return contests[i].ID > contests[j].ID })

	return page(contests, limit, offset)
}

func (s *Store) DeleteContest(contestID, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contest, ok := s.contests[contestID]
	if !ok {
		return ErrContestNotFound
	}
	if contest.UserID != userID {
		return ErrNotContestOwner
	}
	if !contest.Cancel() {
		return ErrContestClosed
	}

	return nil
}

func (s *Store) AddContestPhoto(contestID, userID uint, filename, location, description string) (domain.ContestPhoto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contest, ok := s.contests[contestID]
	if !ok {
		return domain.ContestPhoto{}, ErrContestNotFound
	}
	s.expire(contest)
	if !contest.IsActive() {
		return domain.ContestPhoto{}, ErrContestClosed
	}
	user, ok := s.users[userID]
	if !ok {
		return domain.ContestPhoto{}, ErrUserNotFound
	}

	photo := &domain.ContestPhoto{
		ID:           s.nextContestPhotoID,
		ContestID:    contestID,
		UserID:       userID,
		UserNickname: user.Nickname,
		ImagePath:    "uploads/contests/" + filename,
		Location:     location,
		Description:  description,
		SubmittedAt:  s.timestamp(),
	}
	s.nextContestPhotoID++
	s.contestPhotos[photo.ID] = photo
	contest.PhotoCount++

	return *photo, nil
}

func (s *Store) ContestPhotos(contestID uint) ([]domain.ContestPhoto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contests[contestID]; !ok {
		return nil, ErrContestNotFound
	}

	photos := make([]domain.ContestPhoto, 0)
	for _, cp := range s.contestPhotos {
		if cp.ContestID == contestID {
			photos = append(photos, *cp)
		}
	}
	sort.Slice(photos, func(i, j int) bool { return photos[i].ID < photos[j].ID })

	return photos, nil
}

// SelectContestPhoto adopts a winner: creator-only, active-only, and the
// reward moves to the submitter as the contest completes.
func (s *Store) SelectContestPhoto(contestID, photoID, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contest, ok := s.contests[contestID]
	if !ok {
		return ErrContestNotFound
	}
	if contest.UserID != userID {
		return ErrNotContestOwner
	}
	photo, ok := s.contestPhotos[photoID]
	if !ok || photo.ContestID != contestID {
		return ErrContestPhotoNotFound
	}
	s.expire(contest)
	if !contest.Complete() {
		return ErrContestClosed
	}

	if submitter, ok := s.users[photo.UserID]; ok {
		submitter.Points += contest.Points
	}

	return nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	return items
}
