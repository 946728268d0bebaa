package objectstore

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	domainErrors "github.com/jokistudio/portal/internal/domain/errors"
)

var allowedMediaTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// Store persists payment proofs and portfolio images in an external
// object store and serves them back by URL.
type Store interface {
	Upload(ctx context.Context, dataURI string) (string, error)
	Delete(ctx context.Context, objectURL string) error
}

// HTTPStore implements Store against a Cloudinary-style upload API.
type HTTPStore struct {
	client   *resty.Client
	folder   string
	maxBytes int64
	logger   *slog.Logger
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// New creates a store client for the given API base URL.
func New(baseURL, apiKey, folder string, maxBytes int64, logger *slog.Logger) (*HTTPStore, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse upload url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("upload url must be absolute")
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		client.SetHeader("Authorization", "Bearer "+apiKey)
	}

	return &HTTPStore{client: client, folder: folder, maxBytes: maxBytes, logger: logger}, nil
}

// decodeDataURI validates a base64 data URI and returns its payload and
// file extension. Rejections wrap the domain validation error so handlers
// answer them as bad input rather than storage failures.
func (s *HTTPStore) decodeDataURI(dataURI string) ([]byte, string, error) {
	meta, encoded, found := strings.Cut(dataURI, ",")
	if !found || !strings.HasPrefix(meta, "data:") || !strings.HasSuffix(meta, ";base64") {
		return nil, "", fmt.Errorf("%w: bukti harus berupa data uri base64", domainErrors.ErrValidation)
	}

	mediaType := strings.TrimSuffix(strings.TrimPrefix(meta, "data:"), ";base64")
	ext, ok := allowedMediaTypes[mediaType]
	if !ok {
		return nil, "", fmt.Errorf("%w: tipe file %s tidak didukung", domainErrors.ErrValidation, mediaType)
	}

	if int64(base64.StdEncoding.DecodedLen(len(encoded))) > s.maxBytes {
		return nil, "", fmt.Errorf("%w: ukuran file melebihi batas", domainErrors.ErrValidation)
	}
	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("%w: payload base64 tidak valid", domainErrors.ErrValidation)
	}
	if int64(len(payload)) > s.maxBytes {
		return nil, "", fmt.Errorf("%w: ukuran file melebihi batas", domainErrors.ErrValidation)
	}

	return payload, ext, nil
}

// Upload pushes the artifact and returns its public URL.
func (s *HTTPStore) Upload(ctx context.Context, dataURI string) (string, error) {
	payload, ext, err := s.decodeDataURI(dataURI)
	if err != nil {
		return "", err
	}

	publicID := uuid.NewString()
	var result uploadResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetFileReader("file", publicID+"."+ext, bytes.NewReader(payload)).
		SetFormData(map[string]string{
			"public_id": publicID,
			"folder":    s.folder,
		}).
		SetResult(&result).
		Post("/upload")
	if err != nil {
		return "", fmt.Errorf("%w: upload: %v", domainErrors.ErrStorage, err)
	}
	if resp.IsError() {
		s.logger.Error("object upload rejected", "status", resp.StatusCode(), "body", resp.String())
		return "", fmt.Errorf("%w: upload status %d", domainErrors.ErrStorage, resp.StatusCode())
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("%w: upload response missing url", domainErrors.ErrStorage)
	}

	return result.SecureURL, nil
}

// Delete removes a previously uploaded object. The public ID is recovered
// from the object URL's last path segment.
func (s *HTTPStore) Delete(ctx context.Context, objectURL string) error {
	parsed, err := url.Parse(objectURL)
	if err != nil {
		return fmt.Errorf("%w: parse object url: %v", domainErrors.ErrStorage, err)
	}
	base := path.Base(parsed.Path)
	publicID := strings.TrimSuffix(base, path.Ext(base))
	if publicID == "" || publicID == "." || publicID == "/" {
		return fmt.Errorf("%w: object url has no public id", domainErrors.ErrStorage)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"public_id": path.Join(s.folder, publicID),
		}).
		Post("/destroy")
	if err != nil {
		return fmt.Errorf("%w: destroy: %v", domainErrors.ErrStorage, err)
	}
	if resp.IsError() {
		s.logger.Error("object delete rejected", "status", resp.StatusCode(), "body", resp.String())
		return fmt.Errorf("%w: destroy status %d", domainErrors.ErrStorage, resp.StatusCode())
	}

	return nil
}
