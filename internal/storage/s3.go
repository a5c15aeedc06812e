package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/OFFIS-RIT/lingraph/internal/util"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewS3Client builds a path-style S3 client from the AWS_* environment.
func NewS3Client(ctx context.Context) (*s3.Client, error) {
	region := util.GetEnv("AWS_REGION")
	endpoint := util.GetEnv("AWS_ENDPOINT")
	accessKey := util.GetEnv("AWS_ACCESS_KEY")
	secretKey := util.GetEnv("AWS_SECRET_KEY")
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(region),
		config.WithBaseEndpoint(endpoint),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKey,
			secretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})
	return client, nil
}

// PutJSON uploads body as a JSON object under key in bucket and returns the
// key.
func PutJSON(ctx context.Context, client *s3.Client, bucket string, key string, body []byte) (string, error) {
	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return key, nil
}

// ResultKey is the object key under which the graph of a document is stored.
func ResultKey(documentID string) string {
	return fmt.Sprintf("graphs/%s.json", documentID)
}

// S3ResultStore writes document graphs into one bucket.
type S3ResultStore struct {
	client *s3.Client
	bucket string
}

func NewS3ResultStore(client *s3.Client, bucket string) *S3ResultStore {
	return &S3ResultStore{client: client, bucket: bucket}
}

// Save stores body under ResultKey(documentID).
func (s *S3ResultStore) Save(ctx context.Context, documentID string, body []byte) (string, error) {
	return PutJSON(ctx, s.client, s.bucket, ResultKey(documentID), body)
}
