package s3kit

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awstypes "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	s3kiterrors "github.com/halcyonlabs/s3kit/errors"
	"github.com/halcyonlabs/s3kit/internal/testutil"
)

func TestClient_Delete(t *testing.T) {
	var gotBucket, gotKey string
	mock := &testutil.MockS3Client{
		DeleteObjectFunc: func(ctx context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
			gotBucket = aws.ToString(params.Bucket)
			gotKey = aws.ToString(params.Key)
			return &s3.DeleteObjectOutput{}, nil
		},
	}

	client := newTestClient(t, mock)
	require.NoError(t, client.Delete(context.Background(), "stale.txt"))
	assert.Equal(t, "test-bucket", gotBucket)
	assert.Equal(t, "stale.txt", gotKey)
}

func TestClient_Delete_InvalidKey(t *testing.T) {
	client := newTestClient(t, &testutil.MockS3Client{})
	assert.ErrorIs(t, client.Delete(context.Background(), ""), s3kiterrors.ErrInvalidObjectKey)
}

func TestClient_DeleteMany(t *testing.T) {
	mock := &testutil.MockS3Client{
		DeleteObjectsFunc: func(ctx context.Context, params *s3.DeleteObjectsInput, _ ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error) {
			var deleted []awstypes.DeletedObject
			for _, obj := range params.Delete.Objects {
				deleted = append(deleted, awstypes.DeletedObject{Key: obj.Key})
			}
			return &s3.DeleteObjectsOutput{Deleted: deleted}, nil
		},
	}

	client := newTestClient(t, mock)
	result, err := client.DeleteMany(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, result.Deleted)
}

func TestClient_DeleteMany_RejectsInvalidKey(t *testing.T) {
	client := newTestClient(t, &testutil.MockS3Client{})
	_, err := client.DeleteMany(context.Background(), []string{"ok", ""})
	assert.ErrorIs(t, err, s3kiterrors.ErrInvalidObjectKey)
}

func TestClient_Rename(t *testing.T) {
	var copySource string
	mock := &testutil.MockS3Client{
		CopyObjectFunc: func(ctx context.Context, params *s3.CopyObjectInput, _ ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {
			copySource = aws.ToString(params.CopySource)
			return &s3.CopyObjectOutput{}, nil
		},
	}

	client := newTestClient(t, mock)
	require.NoError(t, client.Rename(context.Background(), "old.txt", "new.txt"))
	assert.Equal(t, "test-bucket/old.txt", copySource)
}

func TestClient_Rename_SelfRejected(t *testing.T) {
	called := false
	mock := &testutil.MockS3Client{
		CopyObjectFunc: func(ctx context.Context, params *s3.CopyObjectInput, _ ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {
			called = true
			return &s3.CopyObjectOutput{}, nil
		},
	}

	client := newTestClient(t, mock)
	err := client.Rename(context.Background(), "same.txt", "same.txt")
	assert.ErrorIs(t, err, s3kiterrors.ErrInvalidInput)
	assert.False(t, called)
}

func TestClient_Exists(t *testing.T) {
	client := newTestClient(t, &testutil.MockS3Client{})
	exists, err := client.Exists(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestClient_GetMetadata(t *testing.T) {
	mock := &testutil.MockS3Client{
		HeadObjectFunc: func(ctx context.Context, params *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
			return &s3.HeadObjectOutput{
				ContentType:   aws.String("application/json"),
				ContentLength: aws.Int64(17),
			}, nil
		},
	}

	client := newTestClient(t, mock)
	md, err := client.GetMetadata(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "application/json", md.ContentType)
	assert.Equal(t, int64(17), md.ContentLength)
}

func TestClient_List(t *testing.T) {
	mock := &testutil.MockS3Client{
		ListObjectsV2Func: func(ctx context.Context, params *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
			assert.Equal(t, "logs/", aws.ToString(params.Prefix))
			assert.Equal(t, int32(10), aws.ToInt32(params.MaxKeys))
			return &s3.ListObjectsV2Output{
				Contents:              []awstypes.Object{{Key: aws.String("logs/today")}},
				IsTruncated:           aws.Bool(true),
				NextContinuationToken: aws.String("cursor"),
			}, nil
		},
	}

	client := newTestClient(t, mock)
	result, err := client.List(context.Background(), "logs/", WithMaxKeys(10))
	require.NoError(t, err)
	require.Len(t, result.Objects, 1)
	assert.Equal(t, "logs/today", result.Objects[0].Key)
	assert.Equal(t, "cursor", result.NextContinuationToken)
}

func TestClient_ListAll(t *testing.T) {
	mock := &testutil.MockS3Client{
		ListObjectsV2Func: func(ctx context.Context, params *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
			return &s3.ListObjectsV2Output{
				Contents: []awstypes.Object{
					{Key: aws.String("a")},
					{Key: aws.String("b")},
				},
			}, nil
		},
	}

	client := newTestClient(t, mock)
	var keys []string
	for result := range client.ListAll(context.Background(), "") {
		require.NoError(t, result.Err)
		keys = append(keys, result.Object.Key)
	}
	assert.Equal(t, []string{"a", "b"}, keys)
}
