package s3

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_S3Store(t *testing.T) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		t.Skip("Skipping S3 integration test: S3_BUCKET not set")
	}

	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx)
	require.NoError(t, err)

	client := s3.NewFromConfig(cfg)
	store := NewStore(client, bucket,
		WithPrefix("test-profilestore/"),
		WithURLExpiry(time.Minute),
	)

	t.Run("Put and Resolve", func(t *testing.T) {
		data := []byte("fake profile picture")

		id, err := store.Put(ctx, data, "image/png")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(id, ".png"))

		url, err := store.Resolve(ctx, id)
		require.NoError(t, err)

		resp, err := http.Get(url)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, data, body)
	})

	t.Run("Fresh id per put", func(t *testing.T) {
		id1, err := store.Put(ctx, []byte("one"), "image/png")
		require.NoError(t, err)
		id2, err := store.Put(ctx, []byte("two"), "image/png")
		require.NoError(t, err)
		assert.NotEqual(t, id1, id2)
	})
}
