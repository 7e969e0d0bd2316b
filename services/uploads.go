package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/roamly/roamly/core"
)

// UploadsService pushes profile images to the external image host using an
// unsigned upload preset. The host is a third-party collaborator and does
// not use the backend's response envelope.
type UploadsService struct {
	client    *http.Client
	uploadURL string
	preset    string
}

func NewUploadsService(uploadURL, preset string, httpClient *http.Client) *UploadsService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &UploadsService{
		client:    httpClient,
		uploadURL: uploadURL,
		preset:    preset,
	}
}

// Upload sends one image and returns the hosted URL.
func (s *UploadsService) Upload(ctx context.Context, filename string, file io.Reader) (*core.UploadResult, error) {
	if s.uploadURL == "" {
		return nil, core.ErrUploadsNotConfigured
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read upload file: %w", err)
	}
	if s.preset != "" {
		if err := form.WriteField("upload_preset", s.preset); err != nil {
			return nil, fmt.Errorf("failed to build upload form: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.uploadURL, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &core.APIError{Status: resp.StatusCode, Message: string(bytes.TrimSpace(raw))}
	}

	var result core.UploadResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	if result.SecureURL == "" {
		return nil, fmt.Errorf("upload response missing secure_url")
	}
	return &result, nil
}
