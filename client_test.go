package s3kit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonlabs/s3kit/errors"
	"github.com/halcyonlabs/s3kit/internal/testutil"
)

func newTestClient(t *testing.T, mock *testutil.MockS3Client) *Client {
	t.Helper()
	client, err := NewWithClient(mock, Config{Bucket: "test-bucket"})
	require.NoError(t, err)
	return client
}

func TestNewWithClient_ValidatesConfig(t *testing.T) {
	_, err := NewWithClient(&testutil.MockS3Client{}, Config{})
	assert.ErrorIs(t, err, errors.ErrInvalidBucketName)
}

func TestClient_Bucket(t *testing.T) {
	client := newTestClient(t, &testutil.MockS3Client{})
	assert.Equal(t, "test-bucket", client.Bucket())
}

func TestClient_OpContext(t *testing.T) {
	client := newTestClient(t, &testutil.MockS3Client{})

	ctx, cancel := client.opContext(context.Background())
	defer cancel()
	_, hasDeadline := ctx.Deadline()
	assert.False(t, hasDeadline, "no timeout configured")

	client.cfg.Timeout = time.Minute
	ctx, cancel = client.opContext(context.Background())
	defer cancel()
	deadline, hasDeadline := ctx.Deadline()
	require.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}
