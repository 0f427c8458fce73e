package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"passat/config"
	"passat/infras/otel"
	"passat/shared/constant"
)

const (
	otelAttrObjectName = "object_name"
	otelAttrBucket     = "bucket"
)

// DocumentStore archives rendered documents. Finalized invoice PDFs land in
// the documents bucket.
type DocumentStore interface {
	StoreDocument(ctx context.Context, directory, fileName, contentType string, data []byte) (url string, err error)
	DeleteDocument(ctx context.Context, directory, objectName string) error
}

type documentStoreImpl struct {
	Client *s3.Client
	Config *config.Config
	otel   otel.Otel
}

func (svc *documentStoreImpl) StoreDocument(ctx context.Context, directory, fileName, contentType string, data []byte) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".StoreDocument")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := svc.Config.External.S3.DocumentBucket

	scope.SetAttributes(map[string]any{
		otelAttrObjectName: fileName,
		otelAttrBucket:     bucketName,
	})

	objectKey := path.Join(directory, fileName)
	fileReader := bytes.NewReader(data)

	_, err = svc.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucketName),
		Key:           aws.String(objectKey),
		Body:          fileReader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(fileReader.Size()),
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to store document in S3: %w", err)
	}

	publicDomain := svc.Config.External.S3.PublicDomain

	return fmt.Sprintf("%s/%s", publicDomain, objectKey), nil
}

func (svc *documentStoreImpl) DeleteDocument(ctx context.Context, directory, objectName string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".DeleteDocument")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := svc.Config.External.S3.DocumentBucket

	scope.SetAttributes(map[string]any{
		otelAttrObjectName: objectName,
		otelAttrBucket:     bucketName,
	})

	objectKey := path.Join(directory, objectName)

	_, err = svc.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete document from S3")

		return fmt.Errorf("failed to delete document from S3: %w", err)
	}

	return nil
}

func New(config *config.Config, otel otel.Otel) DocumentStore {
	endpoint := config.External.S3.APIEndpoint

	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKey,
		config.External.S3.SecretKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)

	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
		o.Region = config.External.S3.Region
	})

	return &documentStoreImpl{
		Client: s3Client,
		Config: config,
		otel:   otel,
	}
}
