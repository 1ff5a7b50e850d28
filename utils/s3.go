package utils

import (
	"context"
	"errors"
	"io"
	"log"
	"mime"
	"path"

	appconfig "github.com/Makai-Stern/shoppingify-api/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3Store keeps food images in an S3 bucket under the same key scheme the
// DiskStore uses on disk, so image URLs stay DOMAIN+path either way.
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

func NewS3Store() (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(appconfig.C.S3Region))
	if err != nil {
		return nil, err
	}

	return &S3Store{
		client: s3.NewFromConfig(cfg),
		bucket: appconfig.C.S3Bucket,
		prefix: appconfig.C.UploadDir,
	}, nil
}

func (s *S3Store) exists(key string) bool {
	_, err := s.client.HeadObject(context.TODO(), &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err == nil
}

func (s *S3Store) Save(src io.Reader, ext string) (string, error) {
	var key string
	for {
		key = path.Join(s.prefix, randomFilename(ext))
		if !s.exists(key) {
			break
		}
	}

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (s *S3Store) Delete(key string) error {
	_, err := s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		// Cleanup is best-effort; a key that is already gone is fine.
		log.Printf("s3 delete %s: %v", key, err)
		return nil
	}
	return err
}
