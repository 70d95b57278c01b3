// Package s3types provides shared type definitions for the s3kit module.
package s3types

import "time"

// StorageClass represents the S3 storage class for objects.
type StorageClass string

// Predefined S3 storage classes
const (
	// StorageClassStandard is the default S3 storage class
	StorageClassStandard StorageClass = "STANDARD"

	// StorageClassReducedRedundancy provides reduced redundancy storage
	StorageClassReducedRedundancy StorageClass = "REDUCED_REDUNDANCY"

	// StorageClassStandardIA provides infrequent access storage
	StorageClassStandardIA StorageClass = "STANDARD_IA"

	// StorageClassOneZoneIA provides one zone infrequent access storage
	StorageClassOneZoneIA StorageClass = "ONEZONE_IA"

	// StorageClassIntelligentTiering provides intelligent tiering storage
	StorageClassIntelligentTiering StorageClass = "INTELLIGENT_TIERING"

	// StorageClassGlacier provides Glacier archival storage
	StorageClassGlacier StorageClass = "GLACIER"

	// StorageClassDeepArchive provides Deep Archive storage
	StorageClassDeepArchive StorageClass = "DEEP_ARCHIVE"
)

// ObjectACL represents the access control list for S3 objects.
type ObjectACL string

// Predefined object ACLs
const (
	// ACLPrivate grants private access (default)
	ACLPrivate ObjectACL = "private"

	// ACLPublicRead grants public read access
	ACLPublicRead ObjectACL = "public-read"

	// ACLPublicReadWrite grants public read and write access
	ACLPublicReadWrite ObjectACL = "public-read-write"

	// ACLAuthenticatedRead grants authenticated users read access
	ACLAuthenticatedRead ObjectACL = "authenticated-read"

	// ACLOwnerRead grants bucket owner read access
	ACLOwnerRead ObjectACL = "bucket-owner-read"

	// ACLOwnerFullControl grants bucket owner full control
	ACLOwnerFullControl ObjectACL = "bucket-owner-full-control"
)

// ProgressFunc is invoked for each chunk of an upload as it flows toward the
// transport. bytesWritten is the cumulative count observed so far and
// totalBytes is the declared content length for the whole upload.
//
// For a single upload, invocations are ordered by strictly non-decreasing
// bytesWritten and each one happens before the corresponding chunk reaches
// the network layer. No ordering is guaranteed across concurrent uploads
// sharing the same function, and callers must not assume the goroutine it
// runs on. A panicking ProgressFunc aborts the upload; it is not recovered.
type ProgressFunc func(bytesWritten, totalBytes int64)

// UploadProgress is the progress sequence element for streaming uploads.
// It is a closed set of variants: UploadInProgress, UploadCompleted and
// UploadFailed. Consumers should type-switch over all three; no other
// implementations exist.
type UploadProgress interface {
	uploadProgress()
}

// UploadInProgress reports cumulative bytes observed for an in-flight upload.
// TotalBytes is fixed for the lifetime of one upload and BytesWritten is
// monotonically non-decreasing within one sequence.
type UploadInProgress struct {
	BytesWritten int64
	TotalBytes   int64
}

// UploadCompleted is the terminal success variant carrying the identifiers
// assigned by the backend.
type UploadCompleted struct {
	ETag      string
	VersionID string
}

// UploadFailed is the terminal failure variant carrying the original cause.
type UploadFailed struct {
	Cause error
}

func (UploadInProgress) uploadProgress() {}
func (UploadCompleted) uploadProgress()  {}
func (UploadFailed) uploadProgress()     {}

// Object represents an S3 object with its basic metadata.
type Object struct {
	// Key is the S3 object key (path)
	Key string

	// Size is the object size in bytes
	Size int64

	// LastModified is when the object was last modified
	LastModified time.Time

	// ETag is the S3 entity tag for the object
	ETag string

	// StorageClass is the S3 storage class
	StorageClass string
}

// ObjectResult wraps an Object or the error that ended a listing stream.
type ObjectResult struct {
	Object Object
	Err    error
}

// ObjectMetadata contains detailed metadata about an S3 object.
type ObjectMetadata struct {
	// ContentType is the MIME type of the object
	ContentType string

	// ContentLength is the size of the object in bytes
	ContentLength int64

	// LastModified is when the object was last modified
	LastModified time.Time

	// ETag is the S3 entity tag for the object
	ETag string

	// Metadata contains user-defined metadata
	Metadata map[string]string
}

// UploadResult contains the result of an upload operation.
type UploadResult struct {
	// Key is the S3 object key that was uploaded
	Key string

	// Size is the size of the uploaded object in bytes
	Size int64

	// ETag is the S3 entity tag for the uploaded object
	ETag string

	// VersionID is the version ID if versioning is enabled
	VersionID string

	// Duration is how long the upload took
	Duration time.Duration
}

// DownloadResult contains the result of a download operation.
type DownloadResult struct {
	// Key is the S3 object key that was downloaded
	Key string

	// Size is the size of the downloaded object in bytes
	Size int64

	// ETag is the S3 entity tag for the downloaded object
	ETag string

	// Duration is how long the download took
	Duration time.Duration
}

// DeleteResult contains the result of a batch delete operation.
type DeleteResult struct {
	// Deleted contains the keys of successfully deleted objects
	Deleted []string

	// Errors contains any errors that occurred during deletion
	Errors []DeleteError

	// Duration is how long the operation took
	Duration time.Duration
}

// DeleteError represents an error that occurred during a delete operation.
type DeleteError struct {
	// Key is the S3 object key that failed to delete
	Key string

	// Code is the error code
	Code string

	// Message is the error message
	Message string
}

// FolderResult contains the result of a folder-level operation, such as
// deleting or uploading every object under a prefix.
type FolderResult struct {
	// Prefix is the folder prefix the operation ran against
	Prefix string

	// Keys contains the object keys affected by the operation
	Keys []string

	// Errors contains per-object failures; the operation continues past them
	Errors []DeleteError

	// Duration is how long the operation took
	Duration time.Duration
}

// ListResult contains the result of a list operation.
type ListResult struct {
	// Objects contains the listed objects
	Objects []Object

	// CommonPrefixes contains the sub-folder prefixes when a delimiter is set
	CommonPrefixes []string

	// IsTruncated indicates if the results were truncated
	IsTruncated bool

	// NextContinuationToken is the cursor for the next page of results
	NextContinuationToken string

	// Duration is how long the operation took
	Duration time.Duration
}

// UploadConfig holds resolved configuration for one upload operation.
type UploadConfig struct {
	ContentType  string
	Metadata     map[string]string
	StorageClass StorageClass
	ACL          ObjectACL
	Progress     ProgressFunc
}

// UploadOptionConfig holds configuration for upload operations via functional options.
type UploadOptionConfig struct {
	ContentType  string
	Metadata     map[string]string
	StorageClass StorageClass
	ACL          ObjectACL
	Progress     ProgressFunc
}

// DownloadOptionConfig holds configuration for download operations via functional options.
type DownloadOptionConfig struct {
	Progress ProgressFunc
}

// ListOptionConfig holds configuration for list operations via functional options.
type ListOptionConfig struct {
	Delimiter         string
	MaxKeys           int32
	StartAfter        string
	ContinuationToken string
}

// FolderOptionConfig holds configuration for folder operations via functional options.
type FolderOptionConfig struct {
	Concurrency int
	Progress    ProgressFunc
}

// Option types consumed by the functional options in the root package.
type (
	// UploadOption is a functional option for configuring upload operations.
	UploadOption func(*UploadOptionConfig)
	// DownloadOption is a functional option for configuring download operations.
	DownloadOption func(*DownloadOptionConfig)
	// ListOption is a functional option for configuring list operations.
	ListOption func(*ListOptionConfig)
	// FolderOption is a functional option for configuring folder operations.
	FolderOption func(*FolderOptionConfig)
)
