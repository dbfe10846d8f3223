package infra

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"polisure/pkg/logger"
)

// ObjectStore accepts a base64 data URL and returns a durable public URL for
// the stored object.
type ObjectStore interface {
	UploadDataURL(ctx context.Context, folder string, dataURL string) (string, error)
}

type BucketConfig struct {
	BucketName      string
	PublicBaseURL   string // defaults to https://storage.googleapis.com/<bucket>
	CredentialsFile string // optional; falls back to ambient credentials
}

func BucketConfigFromEnv() BucketConfig {
	return BucketConfig{
		BucketName:      os.Getenv("GCS_BUCKET_NAME"),
		PublicBaseURL:   os.Getenv("GCS_PUBLIC_BASE_URL"),
		CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
	}
}

type bucketStore struct {
	log     *logger.Logger
	client  *gcs.Client
	bucket  string
	baseURL string
}

func NewBucketStore(ctx context.Context, log *logger.Logger, cfg BucketConfig) (ObjectStore, error) {
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("missing GCS_BUCKET_NAME")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	baseURL := strings.TrimRight(cfg.PublicBaseURL, "/")
	if baseURL == "" {
		baseURL = "https://storage.googleapis.com/" + cfg.BucketName
	}

	return &bucketStore{
		log:     log.With("service", "BucketStore"),
		client:  client,
		bucket:  cfg.BucketName,
		baseURL: baseURL,
	}, nil
}

func (s *bucketStore) UploadDataURL(ctx context.Context, folder string, dataURL string) (string, error) {
	contentType, payload, err := DecodeDataURL(dataURL)
	if err != nil {
		return "", err
	}

	key := folder + "/" + uuid.New().String() + extensionFor(contentType)
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(payload); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize object %s: %w", key, err)
	}

	url := s.baseURL + "/" + key
	s.log.Debug("object uploaded", "key", key, "content_type", contentType)
	return url, nil
}

// DecodeDataURL splits a "data:<mime>;base64,<payload>" string into its
// content type and decoded bytes.
func DecodeDataURL(dataURL string) (contentType string, payload []byte, err error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return "", nil, fmt.Errorf("not a data URL")
	}
	meta, encoded, found := strings.Cut(dataURL[len("data:"):], ",")
	if !found {
		return "", nil, fmt.Errorf("malformed data URL")
	}
	contentType = strings.TrimSuffix(meta, ";base64")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	payload, err = base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, fmt.Errorf("decode data URL payload: %w", err)
	}
	return contentType, payload, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "application/pdf":
		return ".pdf"
	default:
		return ""
	}
}
