package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// Storage persists uploaded files and returns the reference stored in the
// database and served to clients.
type Storage interface {
	Save(data []byte, filename, folder, contentType string) (string, error)
}

// LocalStorage writes files under Dir and serves them from /uploads/.
type LocalStorage struct {
	Dir string
}

func (s *LocalStorage) Save(data []byte, filename, folder, contentType string) (string, error) {
	dir := filepath.Join(s.Dir, folder)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return "", fmt.Errorf("create upload directory: %w", err)
		}
	}

	name := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(filename))
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("save file: %w", err)
	}
	return "/uploads/" + folder + "/" + name, nil
}

// S3Storage uploads files to an S3-compatible object store.
type S3Storage struct {
	Bucket   string
	Endpoint string
	client   *s3.S3
}

func NewS3Storage(bucket, region, endpoint, accessKey, secretKey string) (*S3Storage, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Endpoint:    aws.String(endpoint),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
	if err != nil {
		return nil, err
	}
	return &S3Storage{Bucket: bucket, Endpoint: endpoint, client: s3.New(sess)}, nil
}

func (s *S3Storage) Save(data []byte, filename, folder, contentType string) (string, error) {
	name := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(filename))
	key := fmt.Sprintf("%s/%s", folder, name)

	_, err := s.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}
	return fmt.Sprintf("%s/%s/%s", s.Endpoint, s.Bucket, key), nil
}
