package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"path"

	"china-division/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Publish uploads the raw source tables in dirs to bucket under prefix,
// keeping the directory structure (prefix/mca/201904.tsv). The bucket is
// created when missing. It returns the uploaded object keys.
func Publish(ctx context.Context, client storage.Client, bucket, prefix string, fsys fs.FS, logger *zap.Logger, dirs ...string) ([]string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
		logger.Info("Created bucket", zap.String("bucket", bucket))
	}

	var uploaded []string
	for _, dir := range dirs {
		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return uploaded, fmt.Errorf("failed to read source dir %s: %w", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || path.Ext(entry.Name()) != SourceExt {
				continue
			}
			content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
			if err != nil {
				return uploaded, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
			}

			key := path.Join(prefix, dir, entry.Name())
			_, err = client.PutObject(ctx, bucket, key, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
				ContentType: "text/tab-separated-values; charset=utf-8",
			})
			if err != nil {
				logger.Error("Failed to upload source table", zap.String("key", key), zap.Error(err))
				return uploaded, err
			}
			logger.Info("Uploaded source table", zap.String("key", key), zap.Int("bytes", len(content)))
			uploaded = append(uploaded, key)
		}
	}

	return uploaded, nil
}
