package s3kit

import "github.com/halcyonlabs/s3kit/s3types"

// WithContentType sets the Content-Type header for an upload.
func WithContentType(contentType string) s3types.UploadOption {
	return func(cfg *s3types.UploadOptionConfig) {
		cfg.ContentType = contentType
	}
}

// WithMetadata attaches user metadata to an uploaded object.
func WithMetadata(metadata map[string]string) s3types.UploadOption {
	return func(cfg *s3types.UploadOptionConfig) {
		cfg.Metadata = metadata
	}
}

// WithACL sets the canned ACL applied to an uploaded object.
func WithACL(acl s3types.ObjectACL) s3types.UploadOption {
	return func(cfg *s3types.UploadOptionConfig) {
		cfg.ACL = acl
	}
}

// WithStorageClass sets the storage class for an uploaded object.
func WithStorageClass(class s3types.StorageClass) s3types.UploadOption {
	return func(cfg *s3types.UploadOptionConfig) {
		cfg.StorageClass = class
	}
}

// WithProgress registers a callback observing upload progress chunk by chunk.
func WithProgress(fn s3types.ProgressFunc) s3types.UploadOption {
	return func(cfg *s3types.UploadOptionConfig) {
		cfg.Progress = fn
	}
}

// WithDownloadProgress registers a callback observing download progress.
func WithDownloadProgress(fn s3types.ProgressFunc) s3types.DownloadOption {
	return func(cfg *s3types.DownloadOptionConfig) {
		cfg.Progress = fn
	}
}

// WithDelimiter groups listed keys by delimiter, surfacing common prefixes.
func WithDelimiter(delimiter string) s3types.ListOption {
	return func(cfg *s3types.ListOptionConfig) {
		cfg.Delimiter = delimiter
	}
}

// WithMaxKeys caps the number of keys returned per list page.
func WithMaxKeys(maxKeys int32) s3types.ListOption {
	return func(cfg *s3types.ListOptionConfig) {
		cfg.MaxKeys = maxKeys
	}
}

// WithStartAfter starts listing after the given key. Ignored when a
// continuation token is set.
func WithStartAfter(key string) s3types.ListOption {
	return func(cfg *s3types.ListOptionConfig) {
		cfg.StartAfter = key
	}
}

// WithContinuationToken resumes listing from a previous page's token.
func WithContinuationToken(token string) s3types.ListOption {
	return func(cfg *s3types.ListOptionConfig) {
		cfg.ContinuationToken = token
	}
}

// WithConcurrency overrides the client's worker pool size for one folder
// upload.
func WithConcurrency(n int) s3types.FolderOption {
	return func(cfg *s3types.FolderOptionConfig) {
		cfg.Concurrency = n
	}
}

// WithFolderProgress registers a callback observing cumulative bytes uploaded
// across a whole folder upload.
func WithFolderProgress(fn s3types.ProgressFunc) s3types.FolderOption {
	return func(cfg *s3types.FolderOptionConfig) {
		cfg.Progress = fn
	}
}

func resolveUploadOptions(opts []s3types.UploadOption) *s3types.UploadConfig {
	optCfg := &s3types.UploadOptionConfig{}
	for _, opt := range opts {
		opt(optCfg)
	}
	return &s3types.UploadConfig{
		ContentType:  optCfg.ContentType,
		Metadata:     optCfg.Metadata,
		StorageClass: optCfg.StorageClass,
		ACL:          optCfg.ACL,
		Progress:     optCfg.Progress,
	}
}

func resolveDownloadOptions(opts []s3types.DownloadOption) *s3types.DownloadOptionConfig {
	cfg := &s3types.DownloadOptionConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func resolveListOptions(opts []s3types.ListOption) *s3types.ListOptionConfig {
	cfg := &s3types.ListOptionConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func resolveFolderOptions(opts []s3types.FolderOption) *s3types.FolderOptionConfig {
	cfg := &s3types.FolderOptionConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
