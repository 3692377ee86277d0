package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	appconfig "aerozone/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// R2Archive stores raw uploads in a Cloudflare R2 bucket.
type R2Archive struct {
	client     *s3.Client
	bucket     string
	publicBase string
	now        func() time.Time
}

// NewR2Archive builds an S3 client pointed at the account's R2 endpoint.
func NewR2Archive(ctx context.Context, cfg appconfig.R2Config) (*R2Archive, error) {
	if !cfg.Enabled() {
		return nil, errors.New("missing required R2 settings")
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %w", err)
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &R2Archive{
		client:     client,
		bucket:     cfg.Bucket,
		publicBase: cfg.PublicURL,
		now:        time.Now,
	}, nil
}

// ArchiveUpload puts the file under uploads/ and returns where it landed.
func (a *R2Archive) ArchiveUpload(ctx context.Context, filename string, data []byte) (string, error) {
	key := ArchiveKey(filename, a.now(), uuid.NewString())

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(uploadContentType(filename)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to R2: %w", err)
	}

	if a.publicBase == "" {
		return key, nil
	}
	return PublicURL(a.publicBase, key), nil
}

// ArchiveKey is uploads/<utc timestamp>_<id>_<base name>.
func ArchiveKey(filename string, at time.Time, id string) string {
	base := filepath.Base(strings.ReplaceAll(filename, `\`, "/"))
	if base == "." || base == "/" || base == "" {
		base = "upload"
	}
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("uploads/%s_%s_%s", at.UTC().Format("20060102T150405Z"), id, base)
}

// PublicURL joins the bucket's public base with an escaped key.
func PublicURL(base, key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.TrimRight(base, "/") + "/" + strings.Join(parts, "/")
}

func uploadContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".xls":
		return "application/vnd.ms-excel"
	case ".csv":
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
