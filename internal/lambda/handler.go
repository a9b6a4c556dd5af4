package lambda

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/stahnma/github-explorer/internal/commands"
)

// Uploader is the subset of the S3 client used by the handler.
type Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewHandler returns a Lambda handler function that exports the saved
// repository list and uploads it to S3.
func NewHandler(app *commands.App) func(context.Context, interface{}) (string, error) {
	return newHandler(app, func(ctx context.Context, region string) (Uploader, error) {
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		return s3.NewFromConfig(cfg), nil
	}, time.Now)
}

func newHandler(app *commands.App, newUploader func(context.Context, string) (Uploader, error), now func() time.Time) func(context.Context, interface{}) (string, error) {
	return func(ctx context.Context, event interface{}) (string, error) {
		bucket := app.Config.S3Bucket
		key := app.Config.S3ObjectKey
		if bucket == "" || key == "" {
			return "", fmt.Errorf("S3_BUCKET_NAME and S3_OBJECT_KEY environment variables must be set")
		}

		var buf bytes.Buffer
		if err := app.ExportJSON(ctx, &buf); err != nil {
			return "", fmt.Errorf("export: %w", err)
		}
		if buf.Len() == 0 {
			return "", fmt.Errorf("export produced no output")
		}

		if strings.Contains(key, "%s") {
			key = fmt.Sprintf(key, now().Format("2006-Jan-02"))
		}

		svc, err := newUploader(ctx, app.Config.AWSRegion)
		if err != nil {
			return "", err
		}

		_, err = svc.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(buf.Bytes()),
			ContentType: aws.String("application/json"),
		})
		if err != nil {
			return "", fmt.Errorf("failed to upload file to S3: %w", err)
		}

		app.Logger.Info("exported saved repositories", "bucket", bucket, "key", key, "bytes", buf.Len())
		return "Lambda executed successfully and output uploaded to S3", nil
	}
}
