package campus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"campus_portal/internal/common"
)

// Uploader pushes images to the hosted upload endpoint with an unsigned
// preset. The returned secure URL is stored on entities as-is; the portal
// never keeps the bytes.
type Uploader struct {
	httpClient *http.Client
	endpoint   string
	preset     string
}

func NewUploader(cloudName, preset string) *Uploader {
	return &Uploader{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName),
		preset:     preset,
	}
}

// newUploaderForEndpoint exists for tests against a local fake endpoint.
func newUploaderForEndpoint(endpoint, preset string) *Uploader {
	return &Uploader{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   endpoint,
		preset:     preset,
	}
}

func (u *Uploader) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read upload payload: %w", err)
	}
	if err := writer.WriteField("upload_preset", u.preset); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("%w: upload failed with status %d: %s", common.ErrBadRequest, resp.StatusCode, raw)
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if result.SecureURL == "" {
		return "", common.Errorf("upload response missing secure_url")
	}
	return result.SecureURL, nil
}
