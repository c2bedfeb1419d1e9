package domain

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// UploadEvent describes one uploaded object that should be ingested.
type UploadEvent struct {
	Bucket string
	Key    string
	JobID  string
}

type bucketRef struct {
	Name string `json:"name"`
}

type objectRef struct {
	Key string `json:"key"`
}

type s3Entity struct {
	Bucket bucketRef `json:"bucket"`
	Object objectRef `json:"object"`
}

type uploadMessage struct {
	Detail  *s3Entity `json:"detail"`
	Records []struct {
		S3 s3Entity `json:"s3"`
	} `json:"Records"`
}

// ParseUploadEvent decodes an object-created notification. Both the bucket
// notification format ("Records") and the event-bus envelope ("detail") are
// accepted.
func ParseUploadEvent(data []byte) (*UploadEvent, error) {
	var msg uploadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}

	var bucket, key string
	switch {
	case msg.Detail != nil:
		bucket, key = msg.Detail.Bucket.Name, msg.Detail.Object.Key

	case len(msg.Records) > 0:
		bucket = msg.Records[0].S3.Bucket.Name

		// bucket notifications carry form-encoded keys
		unescaped, err := url.QueryUnescape(msg.Records[0].S3.Object.Key)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed object key: %w", ErrInvalidEvent, err)
		}
		key = unescaped

	default:
		return nil, fmt.Errorf("%w: no object reference", ErrInvalidEvent)
	}

	if bucket == "" || key == "" {
		return nil, fmt.Errorf("%w: bucket and key are required", ErrInvalidEvent)
	}

	jobID, err := JobIDFromKey(key)
	if err != nil {
		return nil, err
	}

	return &UploadEvent{
		Bucket: bucket,
		Key:    key,
		JobID:  jobID,
	}, nil
}

// JobIDFromKey extracts the job id from keys shaped like
// "uploads/<job_id>/<filename>".
func JobIDFromKey(key string) (string, error) {
	parts := strings.Split(key, "/")
	if len(parts) < 3 || parts[1] == "" {
		return "", fmt.Errorf("%w: key %q does not encode a job id", ErrInvalidEvent, key)
	}

	return parts[1], nil
}

// UploadKey is the inverse of JobIDFromKey.
func UploadKey(jobID, filename string) string {
	return "uploads/" + jobID + "/" + filename
}
