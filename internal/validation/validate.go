// Package validation checks user-supplied bucket names, object keys, and
// upload parameters before they reach AWS.
package validation

import (
	"net"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/halcyonlabs/s3kit/errors"
	"github.com/halcyonlabs/s3kit/s3types"
)

// maxKeyLength is the S3 limit on object key length in bytes.
const maxKeyLength = 1024

// BucketName validates that a bucket name is DNS-compliant per AWS S3 rules.
func BucketName(bucket string) error {
	fail := func(msg string) error {
		return errors.NewError("validateBucketName", errors.ErrInvalidBucketName).
			WithBucket(bucket).
			WithMessage(msg)
	}

	if bucket == "" {
		return fail("bucket name cannot be empty")
	}
	if len(bucket) < 3 || len(bucket) > 63 {
		return fail("bucket name must be between 3 and 63 characters long")
	}
	for _, char := range bucket {
		if !isBucketChar(char) {
			return fail("bucket name can only contain lowercase letters, numbers, dots, and hyphens")
		}
	}
	if isEdgeChar(bucket[0]) || isEdgeChar(bucket[len(bucket)-1]) {
		return fail("bucket name cannot start or end with a hyphen or dot")
	}
	if strings.Contains(bucket, "..") || strings.Contains(bucket, "--") {
		return fail("bucket name cannot contain adjacent dots or hyphens")
	}
	if net.ParseIP(bucket) != nil {
		return fail("bucket name cannot be formatted as an IP address")
	}

	return nil
}

// ObjectKey validates an object key, rejecting empty keys, oversized keys,
// path traversal sequences, and control characters.
func ObjectKey(key string) error {
	fail := func(msg string) error {
		return errors.NewError("validateObjectKey", errors.ErrInvalidObjectKey).
			WithKey(key).
			WithMessage(msg)
	}

	if key == "" {
		return fail("object key cannot be empty")
	}
	if len(key) > maxKeyLength {
		return fail("object key cannot exceed 1024 bytes")
	}
	if hasPathTraversal(key) {
		return fail("object key cannot contain path traversal sequences")
	}
	for _, char := range key {
		if unicode.IsControl(char) {
			return fail("object key cannot contain control characters")
		}
	}

	return nil
}

// Metadata validates user metadata keys and values per S3 limits.
func Metadata(metadata map[string]string) error {
	for key, value := range metadata {
		if err := metadataKey(key); err != nil {
			return err
		}
		if len(value) > 2048 {
			return errors.NewError("validateMetadata", errors.ErrInvalidInput).
				WithMessage("metadata value cannot exceed 2048 characters")
		}
	}
	return nil
}

// ACL validates a canned ACL value. The empty string defaults to private.
func ACL(acl s3types.ObjectACL) error {
	switch acl {
	case "", s3types.ACLPrivate, s3types.ACLPublicRead, s3types.ACLPublicReadWrite,
		s3types.ACLAuthenticatedRead, s3types.ACLOwnerRead, s3types.ACLOwnerFullControl:
		return nil
	}
	return errors.NewError("validateACL", errors.ErrInvalidInput).
		WithMessage("unknown canned ACL: " + string(acl))
}

func metadataKey(key string) error {
	fail := func(msg string) error {
		return errors.NewError("validateMetadata", errors.ErrInvalidInput).WithMessage(msg)
	}

	if key == "" {
		return fail("metadata key cannot be empty")
	}
	if len(key) > 128 {
		return fail("metadata key cannot exceed 128 characters")
	}
	lower := strings.ToLower(key)
	if strings.HasPrefix(lower, "aws:") || strings.HasPrefix(lower, "x-amz-") {
		return fail("metadata key cannot use a reserved prefix")
	}
	for _, char := range key {
		if char < 33 || char > 126 {
			return fail("metadata key can only contain printable ASCII characters")
		}
	}
	return nil
}

func isBucketChar(char rune) bool {
	return (char >= '0' && char <= '9') || (char >= 'a' && char <= 'z') || char == '.' || char == '-'
}

func isEdgeChar(char byte) bool {
	return char == '-' || char == '.'
}

func hasPathTraversal(key string) bool {
	if strings.Contains(key, "..") {
		return true
	}
	cleaned := filepath.Clean(key)
	return strings.HasPrefix(cleaned, "..") || strings.HasPrefix(cleaned, "/")
}
