package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"rodizio-reservas/internal/pkg/clock"
	appconfig "rodizio-reservas/internal/pkg/config"
	"rodizio-reservas/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	ErrUploadFailed  = errs.New("receipt upload failed")
	ErrEmptyFilename = errs.New("receipt filename is empty")
)

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ReceiptStore writes receipts to an S3-compatible bucket (R2, MinIO, Supabase)
type ReceiptStore struct {
	client objectPutter
	bucket string
	prefix string
	clock  clock.Clock
}

func NewS3Client(ctx context.Context, cfg appconfig.StorageConfig) (*s3.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load storage config")
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}

func NewReceiptStore(client objectPutter, cfg appconfig.StorageConfig, clk clock.Clock) *ReceiptStore {
	return &ReceiptStore{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.KeyPrefix,
		clock:  clk,
	}
}

// UploadReceipt stores the file under <prefix><unix-ms>_<filename>
func (s *ReceiptStore) UploadReceipt(ctx context.Context, filename string, body io.Reader, size int64, contentType string) (string, error) {
	name := sanitizeFilename(filename)
	if name == "" {
		return "", ErrEmptyFilename
	}

	key := ReceiptKey(s.prefix, s.clock.Now().UnixMilli(), name)
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		slog.Error("receipt upload failed", "bucket", s.bucket, "key", key, "error", err.Error())
		return "", errs.Mark(errs.Wrap(err, "put object"), ErrUploadFailed)
	}

	slog.Info("receipt uploaded", "bucket", s.bucket, "key", key, "size", size)
	return key, nil
}

func ReceiptKey(prefix string, unixMilli int64, filename string) string {
	return fmt.Sprintf("%s%d_%s", prefix, unixMilli, filename)
}

// sanitizeFilename drops any client-supplied directory part
func sanitizeFilename(filename string) string {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	return name
}
