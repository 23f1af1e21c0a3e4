//go:build s3example
// +build s3example

// This file provides an example S3-backed snapshot Store. It is excluded
// from regular builds because it requires the AWS SDK. To use it, copy
// this file into your project alongside:
//
//	go get github.com/aws/aws-sdk-go-v2
//	go get github.com/aws/aws-sdk-go-v2/config
//	go get github.com/aws/aws-sdk-go-v2/service/s3

package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store stores traces as JSON objects in an S3 bucket, for sharing a
// recorded render session outside the machine that captured it.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	client := s3.NewFromConfig(cfg)
//	store := snapshot.NewS3Store(client, "my-bucket", "renderkit-traces/")
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Store creates an S3-backed Store.
func NewS3Store(client *s3.Client, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

// Save uploads t as a JSON object under a fresh, server-generated ID. Any
// ID the caller set on t is discarded, matching DiskStore.Save.
func (s *S3Store) Save(t Trace) (string, error) {
	t.ID = generateTraceID()
	data, err := json.Marshal(t)
	if err != nil {
		return "", err
	}

	key := s.prefix + t.ID + ".json"
	_, err = s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("snapshot: s3 upload failed: %w", err)
	}
	return t.ID, nil
}

// Load fetches and decodes the trace with the given ID.
func (s *S3Store) Load(id string) (*Trace, error) {
	if !validTraceID(id) {
		return nil, ErrInvalidID
	}
	key := s.prefix + id + ".json"
	result, err := s.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, ErrNotFound
	}
	defer result.Body.Close()

	var t Trace
	if err := json.NewDecoder(result.Body).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}
