package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/loca-app/loca-go/internal/client"
	"github.com/loca-app/loca-go/internal/client/request"
	"github.com/loca-app/loca-go/internal/domain"
	"github.com/loca-app/loca-go/internal/stubserver"
)

func run(ctx context.Context, c *client.Client, args Args) error {
	switch args.Command {
	case "keywords":
		return printResult(c.ListKeywords(ctx))

	case "keyword-random":
		return printResult(c.RandomKeyword(ctx))

	case "keyword-time":
		period := domain.TimePeriod(args.Period)
		if period == "" {
			period = domain.PeriodForTime(time.Now())
		}
		return printResult(c.TimeBasedKeyword(ctx, period))

	case "keyword-search":
		return printResult(c.SearchKeywords(ctx, args.Query))

	case "photos":
		return printResult(c.ListPhotos(ctx, client.ListPhotosOptions{
			KeywordID: args.KeywordID,
			UserID:    args.UserID,
			Limit:     args.Limit,
			Offset:    args.Offset,
		}))

	case "photo-search":
		return printResult(c.SearchPhotos(ctx, args.Query, client.SearchPhotosOptions{
			SortBy: client.SortOrder(args.Sort),
			Limit:  args.Limit,
			Offset: args.Offset,
		}))

	case "photo-upload":
		return uploadPhoto(ctx, c, args)

	case "photo-like":
		return printStatus("liked", c.LikePhoto(ctx, args.PhotoID, args.UserID))

	case "photo-unlike":
		return printStatus("unliked", c.UnlikePhoto(ctx, args.PhotoID, args.UserID))

	case "photo-delete":
		return printStatus("deleted", c.DeletePhoto(ctx, args.PhotoID))

	case "users":
		return printResult(c.ListUsers(ctx))

	case "points":
		return printResult(c.GetUserPoints(ctx, args.UserID))

	case "contests":
		return printResult(c.ListContests(ctx, contestOpts(args)))

	case "contests-mine":
		return printResult(c.ListMyContests(ctx, args.UserID, contestOpts(args)))

	case "contests-applied":
		return printResult(c.ListAppliedContests(ctx, args.UserID, contestOpts(args)))

	case "contest-create":
		return createContest(ctx, c, args)

	case "contest-delete":
		return printStatus("cancelled", c.DeleteContest(ctx, args.ContestID, args.UserID))

	case "contest-photos":
		return printResult(c.GetContestPhotos(ctx, args.ContestID))

	case "contest-submit":
		return submitContestPhoto(ctx, c, args)

	case "contest-select":
		return printStatus("completed", c.SelectContestPhoto(ctx, args.ContestID, args.PhotoID, args.UserID))

	case "health":
		fmt.Println(c.CheckConnection(ctx))
		return nil

	case "serve":
		s := stubserver.NewServer()
		zap.L().Info(fmt.Sprintf("starting stub server at %v", args.Addr))
		return s.Router.Run(args.Addr)

	default:
		return fmt.Errorf("unknown command %q", args.Command)
	}
}

func contestOpts(args Args) client.ListContestsOptions {
	return client.ListContestsOptions{
		Status: domain.ContestStatus(args.Status),
		Limit:  args.Limit,
		Offset: args.Offset,
	}
}

func uploadPhoto(ctx context.Context, c *client.Client, args Args) error {
	req := request.UploadPhotoRequest{UserID: args.UserID, KeywordID: args.KeywordID, Location: args.Location}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid upload -> %w", err)
	}

	f, err := openImage(args.File)
	if err != nil {
		return err
	}
	defer f.Close()

	file := client.ImageFile{Reader: f, Filename: filepath.Base(args.File)}
	return printResult(c.UploadPhoto(ctx, file, args.UserID, args.KeywordID, args.Location))
}

func submitContestPhoto(ctx context.Context, c *client.Client, args Args) error {
	req := request.SubmitContestPhotoRequest{
		ContestID:   args.ContestID,
		UserID:      args.UserID,
		Location:    args.Location,
		Description: args.Description,
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid submission -> %w", err)
	}

	f, err := openImage(args.File)
	if err != nil {
		return err
	}
	defer f.Close()

	file := client.ImageFile{Reader: f, Filename: filepath.Base(args.File)}
	return printResult(c.UploadContestPhoto(ctx, args.ContestID, file, args.UserID, args.Location, args.Description))
}

func createContest(ctx context.Context, c *client.Client, args Args) error {
	req := request.CreateContestRequest{
		Title:       args.Title,
		Description: args.Description,
		Points:      args.Points,
		Deadline:    args.Deadline,
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid contest -> %w", err)
	}

	return printResult(c.CreateContest(ctx, req, args.UserID))
}

func openImage(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("--file is required")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %v -> %w", path, err)
	}

	return f, nil
}

func printResult[T any](v T, err error) error {
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render result -> %w", err)
	}
	fmt.Println(string(out))

	return nil
}

func printStatus(status string, err error) error {
	if err != nil {
		return err
	}
	fmt.Println(status)

	return nil
}
