// Package stubserver is an in-memory stand-in for the LOCA backend. It
// serves the full endpoint surface the client consumes, with the same
// observable contract: reward invariants, ownership checks, one-way
// contest transitions, and blindly counted likes. Integration tests run
// it in-process; `loca serve` runs it for local development. It is not
// the production backend and persists nothing.
package stubserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/loca-app/loca-go/internal/domain"
)

type Server struct {
	Router *gin.Engine
	store  *Store
}

func NewServer() *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	s := &Server{
		Router: engine,
		store:  NewStore(),
	}

	s.MountMiddlewares()
	s.MountHandlers()

	return s
}

func (s *Server) MountMiddlewares() {
	// Recovery is needed unless we use gin.Default(); the access logger is
	// left off so in-process test runs stay quiet.
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))
}

func (s *Server) MountHandlers() {
	keywords := s.Router.Group("/keywords")
	{
		keywords.GET("/", s.handleListKeywords)
		keywords.GET("/random", s.handleRandomKeyword)
		keywords.GET("/time-based", s.handleTimeBasedKeyword)
	}

	photos := s.Router.Group("/photos")
	{
		photos.GET("/", s.handleListPhotos)
		// POST /photos/upload has to share the tree with POST
		// /photos/:id/like, and gin rejects a static sibling of a
		// wildcard, so upload rides the wildcard.
		photos.POST("/:id", s.handlePhotoPost)
		photos.POST("/:id/like", s.handleLikePhoto)
		photos.DELETE("/:id/like", s.handleUnlikePhoto)
		photos.DELETE("/:id", s.handleDeletePhoto)
	}

	search := s.Router.Group("/search")
	{
		search.GET("/keywords", s.handleSearchKeywords)
		search.GET("/photos", s.handleSearchPhotos)
	}

	users := s.Router.Group("/users")
	{
		users.GET("/", s.handleListUsers)
		users.GET("/:id/points", s.handleUserPoints)
	}

	contests := s.Router.Group("/contests")
	{
		contests.GET("/", s.handleListContests)
		contests.POST("/", s.handleCreateContest)
		contests.DELETE("/:id", s.handleDeleteContest)
		contests.GET("/:id/photos", s.handleContestPhotos)
		contests.POST("/:id/photos", s.handleSubmitContestPhoto)
		contests.POST("/:id/select", s.handleSelectContestPhoto)
	}

	s.Router.GET("/health", handleHealthcheck)
}

func handleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleListKeywords(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, s.store.Keywords())
}

func (s *Server) handleRandomKeyword(ctx *gin.Context) {
	keyword, err := s.store.RandomKeyword()
	if err != nil {
		renderErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, keyword)
}

func (s *Server) handleTimeBasedKeyword(ctx *gin.Context) {
	period := domain.TimePeriod(ctx.Query("time_type"))
	if period != domain.PeriodMorning && period != domain.PeriodEvening {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "time_type must be morning or evening"})
		return
	}

	keyword, err := s.store.TimeBasedKeyword(period)
	if err != nil {
		renderErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, keyword)
}

func (s *Server) handleSearchKeywords(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, s.store.SearchKeywords(ctx.Query("q")))
}

func (s *Server) handleListPhotos(ctx *gin.Context) {
	keywordID := queryUint(ctx, "keyword_id")
	userID := queryUint(ctx, "user_id")
	limit, offset := queryPaging(ctx)

	ctx.JSON(http.StatusOK, s.store.Photos(keywordID, userID, limit, offset))
}

func (s *Server) handleSearchPhotos(ctx *gin.Context) {
	limit, offset := queryPaging(ctx)

	ctx.JSON(http.StatusOK, s.store.SearchPhotos(ctx.Query("q"), ctx.DefaultQuery("sort_by", "latest"), limit, offset))
}

func (s *Server) handlePhotoPost(ctx *gin.Context) {
	if ctx.Param("id") != "upload" {
		ctx.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
		return
	}
	s.handleUploadPhoto(ctx)
}

func (s *Server) handleUploadPhoto(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "file part is required"})
		return
	}

	userID := formUint(ctx, "user_id")
	keywordID := formUint(ctx, "keyword_id")

	photo, err := s.store.AddPhoto(userID, keywordID, file.Filename, ctx.PostForm("location"))
	if err != nil {
		renderErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, photo)
}

func (s *Server) handleLikePhoto(ctx *gin.Context) {
	if err := s.store.LikePhoto(paramUint(ctx, "id"), queryUint(ctx, "user_id")); err != nil {
		renderErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "liked"})
}

func (s *Server) handleUnlikePhoto(ctx *gin.Context) {
	if err := s.store.UnlikePhoto(paramUint(ctx, "id"), queryUint(ctx, "user_id")); err != nil {
		renderErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "unliked"})
}

func (s *Server) handleDeletePhoto(ctx *gin.Context) {
	if err := s.store.DeletePhoto(paramUint(ctx, "id")); err != nil {
		renderErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) handleListUsers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, s.store.Users())
}

func (s *Server) handleUserPoints(ctx *gin.Context) {
	points, err := s.store.UserPoints(paramUint(ctx, "id"))
	if err != nil {
		renderErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"points": points})
}

func (s *Server) handleListContests(ctx *gin.Context) {
	status := domain.ContestStatus(ctx.Query("status"))
	userID := queryUint(ctx, "user_id")
	applied := ctx.Query("filter") == "applied"
	limit, offset := queryPaging(ctx)

	ctx.JSON(http.StatusOK, s.store.Contests(status, userID, applied, limit, offset))
}

func (s *Server) handleCreateContest(ctx *gin.Context) {
	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Points      int    `json:"points"`
		Deadline    string `json:"deadline"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	contest, err := s.store.CreateContest(input.Title, input.Description, input.Points, input.Deadline, queryUint(ctx, "user_id"))
	if err != nil {
		renderErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, contest)
}

func (s *Server) handleDeleteContest(ctx *gin.Context) {
	if err := s.store.DeleteContest(paramUint(ctx, "id"), queryUint(ctx, "user_id")); err != nil {
		renderErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (s *Server) handleContestPhotos(ctx *gin.Context) {
	photos, err := s.store.ContestPhotos(paramUint(ctx, "id"))
	if err != nil {
		renderErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, photos)
}

func (s *Server) handleSubmitContestPhoto(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "file part is required"})
		return
	}

	photo, err := s.store.AddContestPhoto(paramUint(ctx, "id"), formUint(ctx, "user_id"), file.Filename, ctx.PostForm("location"), ctx.PostForm("description"))
	if err != nil {
		renderErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, photo)
}

func (s *Server) handleSelectContestPhoto(ctx *gin.Context) {
	if err := s.store.SelectContestPhoto(paramUint(ctx, "id"), queryUint(ctx, "photo_id"), queryUint(ctx, "user_id")); err != nil {
		renderErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "completed"})
}

// renderErr maps store errors onto HTTP statuses and the {"detail": ...}
// body shape the client knows how to read.
func renderErr(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, ErrKeywordNotFound) || errors.Is(err, ErrUserNotFound):
		// Unknown references on uploads are validation failures.
		status = http.StatusUnprocessableEntity
	case errors.Is(err, ErrPhotoNotFound) || errors.Is(err, ErrContestNotFound) || errors.Is(err, ErrContestPhotoNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrNotContestOwner):
		status = http.StatusForbidden
	case errors.Is(err, ErrContestClosed):
		status = http.StatusConflict
	case errors.Is(err, ErrInvalidRewardPoints) || errors.Is(err, ErrInsufficientPoints):
		status = http.StatusBadRequest
	}

	ctx.JSON(status, gin.H{"detail": err.Error()})
}

func paramUint(ctx *gin.Context, name string) uint {
	v, _ := strconv.ParseUint(ctx.Param(name), 10, 64)
	return uint(v)
}

func queryUint(ctx *gin.Context, name string) uint {
	v, _ := strconv.ParseUint(ctx.Query(name), 10, 64)
	return uint(v)
}

func formUint(ctx *gin.Context, name string) uint {
	v, _ := strconv.ParseUint(ctx.PostForm(name), 10, 64)
	return uint(v)
}

func queryPaging(ctx *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	return limit, offset
}
