package storage

import (
	"context"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the slice of the S3 client Save depends on.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store writes uploads to an S3-compatible bucket. Endpoint is optional;
// setting it (e.g. for MinIO) also switches the client to path-style
// addressing. Client overrides the real client when set; tests use it.
type S3Store struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
	Prefix    string
	Client    PutObjectAPI
}

func (s *S3Store) newClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.AccessKey,
			s.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func (s *S3Store) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	client := s.Client
	if client == nil {
		c, err := s.newClient(ctx)
		if err != nil {
			return "", &StorageError{Op: "s3 client", Err: err}
		}
		client = c
	}

	key := "avatars/" + uniqueName(originalName)
	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", &StorageError{Op: "put " + key, Err: err}
	}

	return path.Join(s.Prefix, key), nil
}
