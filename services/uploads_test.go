package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/roamly/roamly/core"
)

// Requirement: uploads send a multipart form with the file and unsigned
// preset, and return the hosted secure_url.
func TestUploadsService_Upload(t *testing.T) {
	var gotPreset, gotFilename string

	host := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("expected multipart form: %v", err)
		}
		gotPreset = r.FormValue("upload_preset")
		if _, header, err := r.FormFile("file"); err == nil {
			gotFilename = header.Filename
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url":"https://img.example.com/v1/avatar.jpg","public_id":"avatar"}`))
	}))
	defer host.Close()

	service := NewUploadsService(host.URL, "roamly_unsigned", nil)

	result, err := service.Upload(context.Background(), "avatar.jpg", strings.NewReader("fake-image-bytes"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if result.SecureURL != "https://img.example.com/v1/avatar.jpg" {
		t.Errorf("result = %+v, want secure_url", result)
	}
	if gotPreset != "roamly_unsigned" {
		t.Errorf("upload_preset = %q, want roamly_unsigned", gotPreset)
	}
	if gotFilename != "avatar.jpg" {
		t.Errorf("filename = %q, want avatar.jpg", gotFilename)
	}
}

// Requirement: an unconfigured upload host fails fast without touching the
// network.
func TestUploadsService_NotConfigured(t *testing.T) {
	service := NewUploadsService("", "", nil)

	_, err := service.Upload(context.Background(), "avatar.jpg", strings.NewReader("x"))
	if !errors.Is(err, core.ErrUploadsNotConfigured) {
		t.Errorf("Upload error = %v, want ErrUploadsNotConfigured", err)
	}
}

// Requirement: a rejected upload surfaces the host's status and body.
func TestUploadsService_HostError(t *testing.T) {
	host := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Upload preset not found"}}`))
	}))
	defer host.Close()

	service := NewUploadsService(host.URL, "missing", nil)

	_, err := service.Upload(context.Background(), "avatar.jpg", strings.NewReader("x"))

	var apiErr *core.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest {
		t.Errorf("Upload error = %v, want 400 APIError", err)
	}
}
