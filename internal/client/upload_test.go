package client_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loca-app/loca-go/internal/client"
)

func TestMIMETypeForFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"photo.png", "image/png"},
		{"photo.PNG", "image/png"},
		{"photo.jpg", "image/jpeg"},
		{"photo.jpeg", "image/jpeg"},
		{"photo.heic", "image/heic"},
		{"photo.webp", "image/webp"},
		{"photo.bmp", "image/jpeg"},
		{"photo", "image/jpeg"},
		{"", "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, client.MIMETypeForFilename(tt.filename))
		})
	}
}

func TestUploadPhoto(t *testing.T) {
	type captured struct {
		method      string
		path        string
		fileMIME    string
		filename    string
		fileContent string
		fields      map[string]string
	}

	upload := func(t *testing.T, file client.ImageFile, location string) captured {
		t.Helper()

		var got captured
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))

			got.method = r.Method
			got.path = r.URL.Path
			got.fields = map[string]string{}
			for name, values := range r.MultipartForm.Value {
				got.fields[name] = values[0]
			}

			files := r.MultipartForm.File["file"]
			require.Len(t, files, 1)
			got.filename = files[0].Filename
			got.fileMIME = files[0].Header.Get("Content-Type")

			f, err := files[0].Open()
			require.NoError(t, err)
			defer f.Close()
			content, err := io.ReadAll(f)
			require.NoError(t, err)
			got.fileContent = string(content)

			_, _ = w.Write([]byte(`{"id":1,"user_id":7,"keyword_id":3,"image_path":"uploads/photo.png","like_count":0}`))
		}))

		photo, err := c.UploadPhoto(context.Background(), file, 7, 3, location)
		require.NoError(t, err)
		assert.Equal(t, uint(1), photo.ID)

		return got
	}

	t.Run("png file with location", func(t *testing.T) {
		got := upload(t, client.ImageFile{
			Reader:   strings.NewReader("png-bytes"),
			Filename: "photo.png",
		}, "  서울 성수동  ")

		assert.Equal(t, http.MethodPost, got.method)
		assert.Equal(t, "/photos/upload", got.path)
		assert.Equal(t, "image/png", got.fileMIME)
		assert.Equal(t, "photo.png", got.filename)
		assert.Equal(t, "png-bytes", got.fileContent)
		assert.Equal(t, "7", got.fields["user_id"])
		assert.Equal(t, "3", got.fields["keyword_id"])
		assert.Equal(t, "서울 성수동", got.fields["location"])
	})

	t.Run("unknown extension defaults to jpeg, blank location dropped", func(t *testing.T) {
		got := upload(t, client.ImageFile{
			Reader:   strings.NewReader("bytes"),
			Filename: "shot.raw",
		}, "   ")

		assert.Equal(t, "image/jpeg", got.fileMIME)
		_, ok := got.fields["location"]
		assert.False(t, ok)
	})

	t.Run("explicit MIME type wins over extension", func(t *testing.T) {
		got := upload(t, client.ImageFile{
			Reader:   strings.NewReader("bytes"),
			Filename: "photo.png",
			MIMEType: "image/webp",
		}, "")

		assert.Equal(t, "image/webp", got.fileMIME)
	})
}

func TestUploadPhotoRequiresReader(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := c.UploadPhoto(context.Background(), client.ImageFile{Filename: "x.png"}, 1, 1, "")
	assert.Error(t, err)
}

func TestUploadContestPhoto(t *testing.T) {
	var gotPath string
	var gotFields map[string]string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotPath = r.URL.Path
		gotFields = map[string]string{}
		for name, values := range r.MultipartForm.Value {
			gotFields[name] = values[0]
		}
		_, _ = w.Write([]byte(`{"id":5,"contest_id":2,"user_id":7,"image_path":"uploads/contests/a.jpg"}`))
	}))

	photo, err := c.UploadContestPhoto(context.Background(), 2, client.ImageFile{
		Reader:   strings.NewReader("jpg-bytes"),
		Filename: "a.jpg",
	}, 7, "부산 해운대", "노을이 예뻐서")
	require.NoError(t, err)

	assert.Equal(t, "/contests/2/photos", gotPath)
	assert.Equal(t, uint(5), photo.ID)
	assert.Equal(t, "7", gotFields["user_id"])
	assert.Equal(t, "부산 해운대", gotFields["location"])
	assert.Equal(t, "노을이 예뻐서", gotFields["description"])
}
