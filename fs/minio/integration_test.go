//go:build integration

package minio

import (
	"context"
	"fmt"
	"io/fs"
	"sync/atomic"
	"testing"

	"github.com/jmgilman/textload/fs/core"
	"github.com/jmgilman/textload/fs/fstest"
	"github.com/jmgilman/textload/loader"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupMinIOContainer starts a MinIO container and returns a client for it.
func setupMinIOContainer(t *testing.T) *minio.Client {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     "minioadmin",
			"MINIO_ROOT_PASSWORD": "minioadmin",
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp"),
	}

	minioC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start MinIO container")
	t.Cleanup(func() {
		_ = minioC.Terminate(ctx)
	})

	endpoint, err := minioC.Endpoint(ctx, "")
	require.NoError(t, err, "failed to get container endpoint")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	require.NoError(t, err, "failed to create MinIO client")

	require.NoError(t, client.MakeBucket(ctx, testBucket, minio.MakeBucketOptions{}))

	return client
}

// TestMinioConformance runs the conformance suite, giving every
// filesystem its own prefix so each starts empty.
func TestMinioConformance(t *testing.T) {
	client := setupMinIOContainer(t)

	var n atomic.Int64
	fstest.TestSuiteWithConfig(t, func() core.FS {
		mfs, err := NewMinIO(Config{
			Client: client,
			Bucket: testBucket,
			Prefix: fmt.Sprintf("suite-%d", n.Add(1)),
		})
		require.NoError(t, err)
		return mfs
	}, fstest.S3TestConfig())
}

func TestLoaderOverMinio(t *testing.T) {
	client := setupMinIOContainer(t)

	mfs, err := NewMinIO(Config{Client: client, Bucket: testBucket, Prefix: "loader"})
	require.NoError(t, err)

	l := loader.New(mfs)

	t.Run("strict on missing does not create", func(t *testing.T) {
		_, err := l.LoadStrict("absent.txt")
		assert.Equal(t, loader.ReasonNotFound, loader.ReasonOf(err))

		exists, err := mfs.Exists("absent.txt")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("load or create creates empty object", func(t *testing.T) {
		content, err := l.LoadOrCreate("created.txt")
		require.NoError(t, err)
		assert.Empty(t, content)

		info, err := mfs.Stat("created.txt")
		require.NoError(t, err)
		assert.Zero(t, info.Size())

		content, err = l.LoadStrict("created.txt")
		require.NoError(t, err)
		assert.Empty(t, content)
	})

	t.Run("existing content is returned unchanged", func(t *testing.T) {
		require.NoError(t, mfs.WriteFile("hello.txt", []byte("Hello World"), 0o644))

		content, err := l.LoadOrCreate("hello.txt")
		require.NoError(t, err)
		assert.Equal(t, "Hello World", content)
	})

	t.Run("missing bucket is not found", func(t *testing.T) {
		other, err := NewMinIO(Config{Client: client, Bucket: "no-such-bucket"})
		require.NoError(t, err)

		_, err = loader.New(other).LoadStrict("hello.txt")
		assert.Equal(t, loader.ReasonNotFound, loader.ReasonOf(err))
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}
