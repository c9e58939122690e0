package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sourceplane/wheelmatrix/internal/model"
)

// keyPrefix is where the publish stage places built wheels in the bucket
const keyPrefix = "packages/"

// UnavailableError reports an existence probe that could not complete. The
// run fails rather than emitting a matrix with unknown gaps; the surrounding
// pipeline decides whether to retry the whole step.
type UnavailableError struct {
	Filename string
	Err      error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("failed to check bucket for %s: %v", e.Filename, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// ObjectLister is the slice of the S3 API the checker needs; satisfied by
// *s3.Client
type ObjectLister interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Checker probes an object-storage bucket for already-published wheels
type Checker struct {
	client ObjectLister
	bucket string
}

// NewChecker creates a checker over an existing S3 client
func NewChecker(client ObjectLister, bucket string) *Checker {
	return &Checker{client: client, bucket: bucket}
}

// NewCheckerFromEnv creates a checker using ambient AWS configuration
// (environment, shared config, instance role)
func NewCheckerFromEnv(ctx context.Context, bucket string) (*Checker, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return NewChecker(s3.NewFromConfig(cfg), bucket), nil
}

// Exists reports whether the wheel for a build spec is already published.
// It is a pure read: a bounded prefix listing, never a write or delete.
func (c *Checker) Exists(ctx context.Context, spec model.BuildSpec) (bool, error) {
	filename := spec.Filename()

	out, err := c.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(c.bucket),
		Prefix:  aws.String(keyPrefix + filename),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return false, &UnavailableError{Filename: filename, Err: err}
	}

	return len(out.Contents) > 0, nil
}
