package delete

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awstypes "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonlabs/s3kit/internal/testutil"
)

func TestDeleter_Delete(t *testing.T) {
	var gotKey string
	mock := &testutil.MockS3Client{
		DeleteObjectFunc: func(ctx context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
			gotKey = aws.ToString(params.Key)
			return &s3.DeleteObjectOutput{}, nil
		},
	}

	require.NoError(t, New(mock).Delete(context.Background(), "b", "k"))
	assert.Equal(t, "k", gotKey)
}

func TestDeleter_Delete_Error(t *testing.T) {
	mock := &testutil.MockS3Client{
		DeleteObjectFunc: func(ctx context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
			return nil, errors.New("boom")
		},
	}

	err := New(mock).Delete(context.Background(), "b", "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete")
}

func TestDeleter_DeleteMany(t *testing.T) {
	mock := &testutil.MockS3Client{
		DeleteObjectsFunc: func(ctx context.Context, params *s3.DeleteObjectsInput, _ ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error) {
			var deleted []awstypes.DeletedObject
			for _, obj := range params.Delete.Objects {
				deleted = append(deleted, awstypes.DeletedObject{Key: obj.Key})
			}
			return &s3.DeleteObjectsOutput{Deleted: deleted}, nil
		},
	}

	result, err := New(mock).DeleteMany(context.Background(), "b", []string{"a", "b", "c"}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, result.Deleted)
	assert.Empty(t, result.Errors)
}

func TestDeleter_DeleteMany_Batching(t *testing.T) {
	keys := make([]string, 2500)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%04d", i)
	}

	var batchSizes []int
	mock := &testutil.MockS3Client{
		DeleteObjectsFunc: func(ctx context.Context, params *s3.DeleteObjectsInput, _ ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error) {
			batchSizes = append(batchSizes, len(params.Delete.Objects))
			var deleted []awstypes.DeletedObject
			for _, obj := range params.Delete.Objects {
				deleted = append(deleted, awstypes.DeletedObject{Key: obj.Key})
			}
			return &s3.DeleteObjectsOutput{Deleted: deleted}, nil
		},
	}

	result, err := New(mock).DeleteMany(context.Background(), "b", keys, time.Now())
	require.NoError(t, err)
	assert.Equal(t, []int{1000, 1000, 500}, batchSizes)
	assert.Len(t, result.Deleted, 2500)
}

func TestDeleter_DeleteMany_PartialFailure(t *testing.T) {
	mock := &testutil.MockS3Client{
		DeleteObjectsFunc: func(ctx context.Context, params *s3.DeleteObjectsInput, _ ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error) {
			return &s3.DeleteObjectsOutput{
				Deleted: []awstypes.DeletedObject{{Key: aws.String("ok")}},
				Errors: []awstypes.Error{{
					Key:     aws.String("locked"),
					Code:    aws.String("AccessDenied"),
					Message: aws.String("access denied"),
				}},
			}, nil
		},
	}

	result, err := New(mock).DeleteMany(context.Background(), "b", []string{"ok", "locked"}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, result.Deleted)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "locked", result.Errors[0].Key)
	assert.Equal(t, "AccessDenied", result.Errors[0].Code)
}

func TestDeleter_DeleteMany_RequestFailure(t *testing.T) {
	mock := &testutil.MockS3Client{
		DeleteObjectsFunc: func(ctx context.Context, params *s3.DeleteObjectsInput, _ ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error) {
			return nil, errors.New("request failed")
		},
	}

	result, err := New(mock).DeleteMany(context.Background(), "b", []string{"a", "b"}, time.Now())
	require.NoError(t, err)
	assert.Empty(t, result.Deleted)
	assert.Len(t, result.Errors, 2)
}

func TestDeleter_DeleteMany_Empty(t *testing.T) {
	result, err := New(&testutil.MockS3Client{}).DeleteMany(context.Background(), "b", nil, time.Now())
	require.NoError(t, err)
	assert.Empty(t, result.Deleted)
	assert.Empty(t, result.Errors)
}
