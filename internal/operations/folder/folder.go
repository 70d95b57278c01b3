// Package folder implements prefix-level operations: deleting every object
// under a prefix and uploading a local directory tree, with bounded
// concurrency for the uploads.
package folder

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awstypes "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/halcyonlabs/s3kit/errors"
	"github.com/halcyonlabs/s3kit/internal/s3api"
	"github.com/halcyonlabs/s3kit/s3types"
)

// maxBatchSize is the S3 DeleteObjects per-request limit.
const maxBatchSize = 1000

// Folder executes prefix-level operations.
type Folder struct {
	s3Client s3api.S3API
}

// New creates a new Folder instance.
func New(s3Client s3api.S3API) *Folder {
	return &Folder{s3Client: s3Client}
}

// DeletePrefix removes every object whose key starts with prefix. Objects
// are listed page by page and deleted in batches; per-object failures are
// collected rather than aborting the operation.
func (f *Folder) DeletePrefix(
	ctx context.Context,
	bucket, prefix string,
	startTime time.Time,
) (*s3types.FolderResult, error) {
	result := &s3types.FolderResult{Prefix: prefix}

	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	}

	for {
		page, err := f.s3Client.ListObjectsV2(ctx, input)
		if err != nil {
			return nil, errors.NewError("deleteFolder", errors.Classify(err)).WithBucket(bucket).WithKey(prefix)
		}

		var batch []awstypes.ObjectIdentifier
		for _, obj := range page.Contents {
			batch = append(batch, awstypes.ObjectIdentifier{Key: obj.Key})
			if len(batch) == maxBatchSize {
				f.deleteBatch(ctx, bucket, batch, result)
				batch = nil
			}
		}
		if len(batch) > 0 {
			f.deleteBatch(ctx, bucket, batch, result)
		}

		if !aws.ToBool(page.IsTruncated) {
			break
		}
		input.ContinuationToken = page.NextContinuationToken
	}

	result.Duration = time.Since(startTime)
	return result, nil
}

// deleteBatch issues one DeleteObjects request and folds its outcome into result.
func (f *Folder) deleteBatch(
	ctx context.Context,
	bucket string,
	objects []awstypes.ObjectIdentifier,
	result *s3types.FolderResult,
) {
	output, err := f.s3Client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(bucket),
		Delete: &awstypes.Delete{Objects: objects},
	})
	if err != nil {
		for _, obj := range objects {
			result.Errors = append(result.Errors, s3types.DeleteError{
				Key:     aws.ToString(obj.Key),
				Message: err.Error(),
			})
		}
		return
	}

	for _, deleted := range output.Deleted {
		result.Keys = append(result.Keys, aws.ToString(deleted.Key))
	}
	for _, derr := range output.Errors {
		result.Errors = append(result.Errors, s3types.DeleteError{
			Key:     aws.ToString(derr.Key),
			Code:    aws.ToString(derr.Code),
			Message: aws.ToString(derr.Message),
		})
	}
}

// UploadDir uploads every regular file under localDir to bucket with keys
// rooted at prefix, preserving the relative directory structure. Uploads run
// on a bounded worker pool; fn, when non-nil, observes cumulative bytes
// uploaded against the total size discovered during the walk.
func (f *Folder) UploadDir(
	ctx context.Context,
	bucket, localDir, prefix string,
	concurrency int,
	fn s3types.ProgressFunc,
	startTime time.Time,
) (*s3types.FolderResult, error) {
	if concurrency <= 0 {
		concurrency = 5
	}

	files, totalBytes, err := scanDir(localDir)
	if err != nil {
		return nil, errors.NewError("uploadFolder", err).WithBucket(bucket).WithKey(prefix)
	}

	result := &s3types.FolderResult{Prefix: prefix}
	if len(files) == 0 {
		result.Duration = time.Since(startTime)
		return result, nil
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		uploaded int64
	)
	semaphore := make(chan struct{}, concurrency)

	for _, file := range files {
		select {
		case semaphore <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return nil, errors.NewError("uploadFolder", ctx.Err()).WithBucket(bucket).WithKey(prefix)
		}

		wg.Add(1)
		go func(file localFile) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			key := joinKey(prefix, file.relPath)
			if err := f.uploadOne(ctx, bucket, key, file.absPath, file.size); err != nil {
				mu.Lock()
				result.Errors = append(result.Errors, s3types.DeleteError{
					Key:     key,
					Message: err.Error(),
				})
				mu.Unlock()
				return
			}

			mu.Lock()
			result.Keys = append(result.Keys, key)
			uploaded += file.size
			cumulative := uploaded
			mu.Unlock()

			if fn != nil {
				fn(cumulative, totalBytes)
			}
		}(file)
	}

	wg.Wait()
	sort.Strings(result.Keys)
	result.Duration = time.Since(startTime)
	return result, nil
}

func (f *Folder) uploadOne(ctx context.Context, bucket, key, path string, size int64) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	_, err = f.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return fmt.Errorf("failed to upload: %w", err)
	}
	return nil
}

type localFile struct {
	absPath string
	relPath string
	size    int64
}

// scanDir collects regular files under root and their total size.
func scanDir(root string) ([]localFile, int64, error) {
	var files []localFile
	var total int64

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		files = append(files, localFile{
			absPath: p,
			relPath: filepath.ToSlash(rel),
			size:    info.Size(),
		})
		total += info.Size()
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to walk directory: %w", err)
	}
	return files, total, nil
}

// joinKey joins a prefix and a relative path into an object key, avoiding
// duplicate separators.
func joinKey(prefix, rel string) string {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return rel
	}
	return path.Join(prefix, rel)
}
