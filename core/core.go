package core

import (
	"net/http"
	"time"
)

// Config configures the Roamly API client.
type Config struct {
	// BaseURL is the backend API root, e.g. "https://api.roamly.app/api".
	BaseURL string

	// Optional config
	HTTPClient   *http.Client
	UserAgent    string
	Timeout      time.Duration
	Cache        ResponseCache
	CacheConfig  *CacheConfig
	DisableCache bool

	// Image host settings. Uploads stay unavailable when UploadURL is empty.
	UploadURL    string
	UploadPreset string
}
