package services

import (
	"context"
	"strings"

	"polisure/internal/infra"
	"polisure/pkg/logger"
)

// normalizeImageRef turns one client-supplied image into a durable
// reference. Hosted URLs pass through untouched; base64 data URLs are handed
// to the object store, keeping the raw payload when the upload fails so a
// misconfigured bucket never rejects the request.
func normalizeImageRef(ctx context.Context, store infra.ObjectStore, log *logger.Logger, folder, image string) string {
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	if strings.HasPrefix(image, "data:") {
		url, err := store.UploadDataURL(ctx, folder, image)
		if err != nil {
			log.Warn("image upload failed, storing raw payload", "folder", folder, "error", err)
			return image
		}
		return url
	}
	return image
}

func normalizeImageRefs(ctx context.Context, store infra.ObjectStore, log *logger.Logger, folder string, images []string) []string {
	out := make([]string, 0, len(images))
	for _, image := range images {
		out = append(out, normalizeImageRef(ctx, store, log, folder, image))
	}
	return out
}
