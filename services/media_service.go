package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	appConfig "github.com/nyanga-tradition/yayoh-api/config"
)

// UploadResult describes a file hosted by the external media provider
type UploadResult struct {
	URL    string `json:"url"`
	Key    string `json:"key"`
	Format string `json:"format"`
}

// MediaService is the upload relay: it forwards uploaded bytes to the
// external media host and returns the hosted URL
type MediaService interface {
	UploadFile(fileHeader *multipart.FileHeader, folder string) (*UploadResult, error)
	DeleteFile(key string) error
}

// S3MediaService implements MediaService against an S3 bucket
type S3MediaService struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

var mediaServiceInstance MediaService

// InitMediaService initializes the media service with AWS credentials
func InitMediaService() (MediaService, error) {
	cfg := appConfig.GetConfig()

	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.AWSRegion),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig)

	baseURL := cfg.MediaBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.AWSS3Bucket, cfg.AWSRegion)
	}

	mediaServiceInstance = &S3MediaService{
		client:  client,
		bucket:  cfg.AWSS3Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}

	return mediaServiceInstance, nil
}

// GetMediaService returns the initialized media service instance
func GetMediaService() MediaService {
	return mediaServiceInstance
}

// SetMediaService sets the media service instance (primarily for testing)
func SetMediaService(service MediaService) {
	mediaServiceInstance = service
}

// UploadFile streams an uploaded file to the bucket and returns its hosted URL
func (s *S3MediaService) UploadFile(fileHeader *multipart.FileHeader, folder string) (*UploadResult, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("warning: failed to close file: %v", closeErr)
		}
	}()

	// Uploads are size-capped by the handlers, so buffering in memory is fine
	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	filename := filepath.Base(fileHeader.Filename)
	key := fmt.Sprintf("%s/%s_%s", strings.Trim(folder, "/"), uuid.NewString(), filename)

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(filename))
	}

	_, err = s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to media host: %w", err)
	}

	return &UploadResult{
		URL:    fmt.Sprintf("%s/%s", s.baseURL, key),
		Key:    key,
		Format: strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), "."),
	}, nil
}

// DeleteFile deletes a hosted file from the bucket
func (s *S3MediaService) DeleteFile(key string) error {
	if key == "" {
		return nil
	}

	_, err := s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from media host: %w", err)
	}

	return nil
}
