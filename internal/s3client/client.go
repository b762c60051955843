package s3client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	appConfig "github.com/sonicjoy/aws-bucket-downloader/config"
	"github.com/sonicjoy/aws-bucket-downloader/internal/models"
	"github.com/sonicjoy/aws-bucket-downloader/pkg/utils"
)

type Client struct {
	s3Client   *s3.Client
	downloader *manager.Downloader
	config     *appConfig.Config
}

// New builds a client from the configured credentials. Explicit access keys
// take priority; otherwise the named shared-config profile is used, which is
// how SSO sessions are picked up.
func New(cfg *appConfig.Config) (*Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}

	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID:     cfg.AccessKey,
				SecretAccessKey: cfg.SecretKey,
			},
		}))
	} else if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}

	awsConfig, err := config.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Client *s3.Client
	if cfg.ApiURL != "" {
		s3Client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.ApiURL)
			o.UsePathStyle = true
		})
	} else {
		s3Client = s3.NewFromConfig(awsConfig)
	}

	return &Client{
		s3Client:   s3Client,
		downloader: manager.NewDownloader(s3Client),
		config:     cfg,
	}, nil
}

// CheckAccess probes the configured bucket before any download starts, so
// credential and permission problems surface as a single startup failure.
func (c *Client) CheckAccess(ctx context.Context) error {
	bucketName := c.config.BucketName

	_, err := c.s3Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucketName),
	})
	if err == nil {
		return nil
	}

	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return fmt.Errorf("bucket '%s' not found", bucketName)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "Forbidden", "AccessDenied":
			return fmt.Errorf("access denied to bucket '%s', check your permissions: %w", bucketName, err)
		}
	}

	return fmt.Errorf("failed to access bucket '%s': %w", bucketName, err)
}

// ListFolderObjects returns every object under the given key prefix,
// following pagination until the listing is exhausted. Folder markers are
// included; filtering them is the caller's concern.
func (c *Client) ListFolderObjects(ctx context.Context, prefix string) ([]models.RemoteObject, error) {
	var objects []models.RemoteObject

	paginator := s3.NewListObjectsV2Paginator(c.s3Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.config.BucketName),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects under '%s': %w", prefix, err)
		}

		for _, obj := range page.Contents {
			objects = append(objects, models.RemoteObject{
				Key:  aws.ToString(obj.Key),
				Size: aws.ToInt64(obj.Size),
			})
		}
	}

	return objects, nil
}

// DownloadObject fetches one object into the file at destPath, overwriting
// any existing content. On failure a partially written file may remain.
func (c *Client) DownloadObject(ctx context.Context, key, destPath string) error {
	file, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destPath, err)
	}
	defer file.Close()

	_, err = c.downloader.Download(ctx, file, &s3.GetObjectInput{
		Bucket: aws.String(c.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", key, err)
	}

	return nil
}

func (c *Client) GetBucketInfo(ctx context.Context) (*models.BucketInfo, error) {
	bucketName := c.config.BucketName

	locationResp, err := c.s3Client.GetBucketLocation(ctx, &s3.GetBucketLocationInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket location: %w", err)
	}

	region := string(locationResp.LocationConstraint)
	if region == "" {
		region = c.config.Region // Use configured region as fallback
	}

	var objectCount int64
	var totalSize int64
	var lastModified time.Time

	paginator := s3.NewListObjectsV2Paginator(c.s3Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucketName),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}

		objectCount += int64(len(page.Contents))
		for _, obj := range page.Contents {
			totalSize += *obj.Size
			if obj.LastModified != nil && obj.LastModified.After(lastModified) {
				lastModified = *obj.LastModified
			}
		}
	}

	bucketsResp, err := c.s3Client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}

	var creationDate time.Time
	for _, bucket := range bucketsResp.Buckets {
		if *bucket.Name == bucketName {
			creationDate = *bucket.CreationDate
			break
		}
	}

	return &models.BucketInfo{
		BucketName:     bucketName,
		Region:         region,
		CreationDate:   creationDate,
		ObjectCount:    objectCount,
		TotalSizeBytes: totalSize,
		TotalSizeHuman: utils.FormatBytes(totalSize),
		LastModified:   lastModified,
		APIEndpoint:    c.config.ApiURL,
	}, nil
}
