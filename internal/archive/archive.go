// Package archive keeps a copy of every rendered chart in an S3-compatible
// bucket, so past weeks survive the repository's fixed-filename overwrites.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/githubocto/good-day-azure/internal/config"
	"github.com/githubocto/good-day-azure/internal/survey"
)

type Archive struct {
	client *minio.Client
	bucket string
	log    *zap.Logger
}

// New builds the archive client and ensures the bucket exists. Returns nil
// when no endpoint is configured; callers treat a nil archive as disabled.
func New(ctx context.Context, cfg config.StorageConfig, log *zap.Logger) (*Archive, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check archive bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create archive bucket: %w", err)
		}
	}

	log.Info("Chart archive bucket ready", zap.String("bucket", cfg.Bucket))
	return &Archive{client: client, bucket: cfg.Bucket, log: log}, nil
}

// Put stores one rendered chart under charts/<slack id>/<week start>/<file>.
func (a *Archive) Put(ctx context.Context, slackID string, win survey.Window, filename string, data []byte) error {
	if a == nil {
		return nil
	}
	key := path.Join("charts", slackID, win.Start.Format("2006-01-02"), filename)
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "image/png",
	})
	if err != nil {
		return fmt.Errorf("failed to archive %s: %w", key, err)
	}
	return nil
}
