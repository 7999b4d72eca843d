package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/loca-app/loca-go/internal/domain"
)

// ImageFile is the single upload contract: raw bytes, the original
// filename, and optionally an explicit MIME type. When MIMEType is empty
// it is inferred from the filename extension.
type ImageFile struct {
	Reader   io.Reader
	Filename string
	MIMEType string
}

var imageMIMETypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".heic": "image/heic",
	".webp": "image/webp",
}

const defaultImageMIMEType = "image/jpeg"

// MIMETypeForFilename maps a filename extension to its image MIME type.
// Unrecognized extensions fall back to image/jpeg.
func MIMETypeForFilename(name string) string {
	if mimeType, ok := imageMIMETypes[strings.ToLower(filepath.Ext(name))]; ok {
		return mimeType
	}
	return defaultImageMIMEType
}

// UploadPhoto sends a multipart photo upload for a keyword. Blank
// locations are dropped rather than sent empty. Unknown user or keyword
// ids are rejected server-side and surface as *APIError.
func (c *Client) UploadPhoto(ctx context.Context, file ImageFile, userID, keywordID uint, location string) (domain.Photo, error) {
	fields := map[string]string{
		"user_id":    strconv.FormatUint(uint64(userID), 10),
		"keyword_id": strconv.FormatUint(uint64(keywordID), 10),
	}
	if loc := strings.TrimSpace(location); loc != "" {
		fields["location"] = loc
	}

	var photo domain.Photo
	if err := c.postMultipart(ctx, "upload photo", "/photos/upload", file, fields, &photo); err != nil {
		return domain.Photo{}, err
	}
	return photo, nil
}

// UploadContestPhoto submits a photo to a contest.
func (c *Client) UploadContestPhoto(ctx context.Context, contestID uint, file ImageFile, userID uint, location, description string) (domain.ContestPhoto, error) {
	fields := map[string]string{
		"user_id": strconv.FormatUint(uint64(userID), 10),
	}
	if loc := strings.TrimSpace(location); loc != "" {
		fields["location"] = loc
	}
	if desc := strings.TrimSpace(description); desc != "" {
		fields["description"] = desc
	}

	var photo domain.ContestPhoto
	if err := c.postMultipart(ctx, "upload contest photo", fmt.Sprintf("/contests/%v/photos", contestID), file, fields, &photo); err != nil {
		return domain.ContestPhoto{}, err
	}
	return photo, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, `\"`)

func (c *Client) postMultipart(ctx context.Context, op, path string, file ImageFile, fields map[string]string, out any) error {
	if file.Reader == nil {
		return fmt.Errorf("%v -> image file reader is required", op)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	mimeType := file.MIMEType
	if mimeType == "" {
		mimeType = MIMETypeForFilename(file.Filename)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%v"`, quoteEscaper.Replace(file.Filename)))
	header.Set("Content-Type", mimeType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("%v -> create file part -> %w", op, err)
	}
	if _, err := io.Copy(part, file.Reader); err != nil {
		return fmt.Errorf("%v -> read image -> %w", op, err)
	}

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("%v -> write field %v -> %w", op, name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("%v -> finish multipart body -> %w", op, err)
	}

	return c.doJSON(ctx, op, http.MethodPost, path, nil, &body, writer.FormDataContentType(), out)
}
