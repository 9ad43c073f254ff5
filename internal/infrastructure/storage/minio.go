package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/followupdev/meeting-followup/pkg/config"
)

// SummaryArchive stores raw summary texts in object storage so processed
// summaries stay auditable after extraction. Archiving is best-effort; the
// caller logs failures and moves on.
type SummaryArchive struct {
	client *minio.Client
	bucket string
}

// NewSummaryArchive creates a MinIO-backed summary archive
func NewSummaryArchive(cfg *config.StorageConfig) (*SummaryArchive, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	archive := &SummaryArchive{
		client: minioClient,
		bucket: cfg.BucketName,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := archive.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return archive, nil
}

// ensureBucket creates the archive bucket if it does not exist
func (a *SummaryArchive) ensureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// Store uploads one summary text under summaries/<meetingID>/<timestamp>.txt.
// Every processing run gets its own object, so re-processing the same
// meeting leaves a full history.
func (a *SummaryArchive) Store(ctx context.Context, meetingID, summaryText string) (string, error) {
	objectName := fmt.Sprintf("summaries/%s/%d.txt", meetingID, time.Now().UnixNano())

	reader := bytes.NewReader([]byte(summaryText))
	_, err := a.client.PutObject(ctx, a.bucket, objectName, reader, int64(len(summaryText)), minio.PutObjectOptions{
		ContentType: "text/plain",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload summary: %w", err)
	}

	return objectName, nil
}
