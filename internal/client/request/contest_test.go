package request_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/loca-app/loca-go/internal/client/request"
)

func validContest() request.CreateContestRequest {
	return request.CreateContestRequest{
		Title:       "최고의 노을 사진",
		Description: "이번 주 노을 샷 공모",
		Points:      300,
		Deadline:    time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339),
	}
}

func TestCreateContestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*request.CreateContestRequest)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(r *request.CreateContestRequest) {},
		},
		{
			name:    "missing title",
			mutate:  func(r *request.CreateContestRequest) { r.Title = "" },
			wantErr: true,
		},
		{
			name:    "points not a multiple of 100",
			mutate:  func(r *request.CreateContestRequest) { r.Points = 150 },
			wantErr: true,
		},
		{
			name:    "zero points",
			mutate:  func(r *request.CreateContestRequest) { r.Points = 0 },
			wantErr: true,
		},
		{
			name:    "negative points",
			mutate:  func(r *request.CreateContestRequest) { r.Points = -100 },
			wantErr: true,
		},
		{
			name:   "large multiple of 100",
			mutate: func(r *request.CreateContestRequest) { r.Points = 10000 },
		},
		{
			name:    "missing deadline",
			mutate:  func(r *request.CreateContestRequest) { r.Deadline = "" },
			wantErr: true,
		},
		{
			name:    "deadline not RFC3339",
			mutate:  func(r *request.CreateContestRequest) { r.Deadline = "2026-13-01" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validContest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUploadPhotoRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     request.UploadPhotoRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  request.UploadPhotoRequest{UserID: 1, KeywordID: 2},
		},
		{
			name:    "missing user",
			req:     request.UploadPhotoRequest{KeywordID: 2},
			wantErr: true,
		},
		{
			name:    "missing keyword",
			req:     request.UploadPhotoRequest{UserID: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
