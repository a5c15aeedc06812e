package s3

import (
	"bytes"
	"context"
	"io"

	"github.com/OFFIS-RIT/lingraph/internal/util"
	"github.com/OFFIS-RIT/lingraph/pkg/loader"
	"github.com/OFFIS-RIT/lingraph/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultMaxRetries = 3

// S3DocumentLoader is a DocumentLoader implementation that loads document
// exports from an S3 bucket. It uses the AWS SDK v2 for Go.
type S3DocumentLoader struct {
	bucket     string
	client     *s3.Client
	maxRetries int
	cache      *loader.TextCache
}

// NewS3DocumentLoaderWithClient creates a new S3DocumentLoader using an
// existing s3.Client.
func NewS3DocumentLoaderWithClient(bucket string, client *s3.Client) *S3DocumentLoader {
	return &S3DocumentLoader{
		bucket:     bucket,
		client:     client,
		maxRetries: defaultMaxRetries,
		cache:      loader.NewTextCache(),
	}
}

// NewS3DocumentLoaderParams defines the configuration parameters for
// creating a new S3DocumentLoader.
//
// Bucket specifies the S3 bucket name.
// Endpoint allows overriding the S3 endpoint (useful for S3-compatible
// storage like MinIO).
// Region specifies the AWS region.
// AccessKey and SecretKey provide static credentials.
// MaxRetries bounds the attempts per object; values <= 0 use 3.
type NewS3DocumentLoaderParams struct {
	Bucket     string
	Endpoint   string
	Region     string
	AccessKey  string
	SecretKey  string
	MaxRetries int
}

// NewS3DocumentLoader creates a new S3DocumentLoader using the provided
// parameters. It initializes an AWS S3 client with static credentials and
// the given endpoint/region using path-style addressing.
//
// Example:
//
//	l, err := s3.NewS3DocumentLoader(ctx, s3.NewS3DocumentLoaderParams{
//		Bucket:    "parsed",
//		Endpoint:  "http://localhost:9000",
//		Region:    "us-east-1",
//		AccessKey: os.Getenv("AWS_ACCESS_KEY"),
//		SecretKey: os.Getenv("AWS_SECRET_KEY"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	file := loader.NewS3DocumentFile(loader.NewDocumentFileParams{ID: "1", FilePath: "docs/1.json", Loader: l})
//	doc, err := file.GetDocument(ctx)
func NewS3DocumentLoader(ctx context.Context, params NewS3DocumentLoaderParams) (*S3DocumentLoader, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(params.Region),
		config.WithBaseEndpoint(params.Endpoint),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			params.AccessKey,
			params.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	l := NewS3DocumentLoaderWithClient(params.Bucket, client)
	if params.MaxRetries > 0 {
		l.maxRetries = params.MaxRetries
	}
	return l, nil
}

// GetFileText retrieves the contents of the given DocumentFile from the
// configured S3 bucket. Failed requests are retried; results are cached.
func (l *S3DocumentLoader) GetFileText(ctx context.Context, file loader.DocumentFile) ([]byte, error) {
	b, err := l.cache.Load(file, func() ([]byte, error) {
		return util.RetryWithContext(ctx, l.maxRetries, func(ctx context.Context) ([]byte, error) {
			return l.getObject(ctx, file.FilePath)
		})
	})
	if err != nil {
		logger.Warn("[Loader] Failed to load document from S3", "bucket", l.bucket, "key", file.FilePath, "err", err)
		return nil, err
	}
	return b, nil
}

func (l *S3DocumentLoader) getObject(ctx context.Context, key string) ([]byte, error) {
	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, out.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
