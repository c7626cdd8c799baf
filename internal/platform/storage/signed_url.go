// Package storage provides a development implementation of signed URL
// issuance for the media feature. Real deployments point the same interface
// at the object store's URL-signing API.
package storage

import (
	"context"
	"fmt"
	"net/url"
	"os"
)

// LocalSigner fabricates upload and download URLs under a configured base
// URL. The URLs carry no real signature; they exist so the media flow can be
// exercised end to end without an object store.
type LocalSigner struct {
	baseURL string
}

// NewLocalSigner creates a LocalSigner. The base URL comes from
// MEDIA_BASE_URL, defaulting to a local path.
func NewLocalSigner() *LocalSigner {
	base := os.Getenv("MEDIA_BASE_URL")
	if base == "" {
		base = "http://localhost:8080/_media"
	}
	return &LocalSigner{baseURL: base}
}

// UploadURL returns the URL the client should PUT the object bytes to.
func (s *LocalSigner) UploadURL(ctx context.Context, key, contentType string) (string, error) {
	return fmt.Sprintf("%s/%s?contentType=%s", s.baseURL, url.PathEscape(key), url.QueryEscape(contentType)), nil
}

// DownloadURL returns the URL the client can GET the object bytes from.
func (s *LocalSigner) DownloadURL(ctx context.Context, key string) (string, error) {
	return fmt.Sprintf("%s/%s", s.baseURL, url.PathEscape(key)), nil
}
