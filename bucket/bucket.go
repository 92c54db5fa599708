// Package bucket publishes build artifacts (deck JSON, call sheet,
// previews) to an S3 bucket so a class set can be shared or printed
// elsewhere.
package bucket

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"rhythmdeck/constants"
)

func newClient() (*s3.S3, error) {
	cfg := aws.Config{
		Region: aws.String(constants.GetAWSRegion()),
	}
	if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
		cfg.Endpoint = &endpoint
		cfg.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(&cfg)
	if err != nil {
		return nil, fmt.Errorf("creating AWS session: %w", err)
	}
	return s3.New(sess), nil
}

func contentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return "application/json"
	case ".csv":
		return "text/csv"
	case ".txt":
		return "text/plain"
	case ".mid":
		return "audio/midi"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}

// PublishDir uploads every regular file in dir under prefix/ in the
// configured bucket. Returns the uploaded keys.
func PublishDir(dir, bucketName, prefix string) ([]string, error) {
	client, err := newClient()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var keys []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return keys, fmt.Errorf("reading %s: %w", path, err)
		}

		key := entry.Name()
		if prefix != "" {
			key = strings.TrimSuffix(prefix, "/") + "/" + key
		}
		_, err = client.PutObject(&s3.PutObjectInput{
			Bucket:      aws.String(bucketName),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(contentType(entry.Name())),
		})
		if err != nil {
			return keys, fmt.Errorf("uploading %s: %w", key, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
