package s3kit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/halcyonlabs/s3kit/errors"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "minimal valid",
			cfg:  Config{Bucket: "my-bucket"},
		},
		{
			name: "full valid",
			cfg: Config{
				Bucket:      "my-bucket",
				Region:      "eu-west-1",
				AccessKey:   "AKIA",
				SecretKey:   "secret",
				MaxRetries:  3,
				Timeout:     30 * time.Second,
				Concurrency: 8,
			},
		},
		{
			name:    "missing bucket",
			cfg:     Config{},
			wantErr: errors.ErrInvalidBucketName,
		},
		{
			name:    "invalid bucket name",
			cfg:     Config{Bucket: "My_Bucket"},
			wantErr: errors.ErrInvalidBucketName,
		},
		{
			name:    "negative retries",
			cfg:     Config{Bucket: "my-bucket", MaxRetries: -1},
			wantErr: errors.ErrInvalidConfig,
		},
		{
			name:    "negative timeout",
			cfg:     Config{Bucket: "my-bucket", Timeout: -time.Second},
			wantErr: errors.ErrInvalidConfig,
		},
		{
			name:    "negative concurrency",
			cfg:     Config{Bucket: "my-bucket", Concurrency: -2},
			wantErr: errors.ErrInvalidConfig,
		},
		{
			name:    "access key without secret",
			cfg:     Config{Bucket: "my-bucket", AccessKey: "AKIA"},
			wantErr: errors.ErrInvalidConfig,
		},
		{
			name:    "secret without access key",
			cfg:     Config{Bucket: "my-bucket", SecretKey: "secret"},
			wantErr: errors.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ConcurrencyDefault(t *testing.T) {
	cfg := Config{Bucket: "my-bucket"}
	assert.Equal(t, DefaultConcurrency, cfg.concurrency())

	cfg.Concurrency = 12
	assert.Equal(t, 12, cfg.concurrency())
}
