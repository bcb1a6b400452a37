package espn

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentity"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// Config locates the feed bucket and the identity used to read it.
type Config struct {
	Region     string
	IdentityID string
	Bucket     string
	// Endpoint overrides the S3 endpoint and switches to path-style addressing.
	Endpoint string
	// Credentials replaces the Cognito exchange when set.
	Credentials aws.CredentialsProvider
	HTTPClient  *http.Client
}

type s3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Objects reads feed objects from the bucket.
type S3Objects struct {
	api    s3API
	bucket string
}

// NewS3Objects builds an S3 client whose credentials come from the Cognito identity pool,
// cached until they expire.
func NewS3Objects(ctx context.Context, cfg Config) (*S3Objects, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("espn bucket required")
	}
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(aws.AnonymousCredentials{}),
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, awsconfig.WithHTTPClient(cfg.HTTPClient))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	creds := cfg.Credentials
	if creds == nil {
		creds = newCognitoCredentials(cognitoidentity.NewFromConfig(awsCfg), cfg.IdentityID)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.Credentials = aws.NewCredentialsCache(creds)
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Objects{api: client, bucket: cfg.Bucket}, nil
}

// Get returns the body of the object at key. A missing object yields ErrNoData and a
// refused read yields ErrAccessDenied.
func (o *S3Objects) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := o.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(o.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, classify(key, err)
	}
	defer out.Body.Close()
	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return body, nil
}

func classify(key string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%s: %w", key, ErrNoData)
		case "AccessDenied":
			return fmt.Errorf("%s: %w", key, ErrAccessDenied)
		}
	}
	return fmt.Errorf("get %s: %w", key, err)
}
