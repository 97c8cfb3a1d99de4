package minio

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"path"
	"time"

	platformerrors "github.com/jmgilman/textload/errors"
	"github.com/jmgilman/textload/fs/core"
	"github.com/jmgilman/textload/fs/minio/internal/errs"
	"github.com/jmgilman/textload/fs/minio/internal/pathutil"
	"github.com/jmgilman/textload/fs/minio/internal/types"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioFS implements core.FS for MinIO/S3-compatible storage.
//
//nolint:revive // MinioFS name is intentional to match LocalFS and MemoryFS
type MinioFS struct {
	client  *minio.Client
	bucket  string
	prefix  string        // Optional prefix for all keys
	timeout time.Duration // Per-call timeout, zero for none
}

// NewMinIO creates a MinIO-backed filesystem.
// Returns an INVALID_CONFIGURATION error if cfg is invalid.
func NewMinIO(cfg Config) (*MinioFS, error) {
	if err := cfg.validate(); err != nil {
		return nil, platformerrors.Wrap(err, platformerrors.CodeInvalidConfig, "invalid minio config")
	}

	client := cfg.Client
	if client == nil {
		var err error
		client, err = minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
			Region: cfg.Region,
		})
		if err != nil {
			return nil, platformerrors.Wrap(err, platformerrors.CodeInvalidConfig, "failed to create minio client")
		}
	}

	return &MinioFS{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  pathutil.Normalize(cfg.Prefix),
		timeout: cfg.RequestTimeout,
	}, nil
}

// key maps a resource name onto its object key.
// Names resolving to the bucket root are rejected with fs.ErrInvalid.
func (m *MinioFS) key(op, name string) (string, error) {
	if pathutil.Normalize(name) == "" {
		return "", errs.PathError(op, name, fs.ErrInvalid)
	}
	return pathutil.JoinPath(m.prefix, name), nil
}

// requestContext returns a context bounded by the configured request timeout.
func (m *MinioFS) requestContext() (context.Context, context.CancelFunc) {
	if m.timeout > 0 {
		return context.WithTimeout(context.Background(), m.timeout)
	}
	return context.WithCancel(context.Background())
}

// Open opens the named object for streaming reads.
// Absence is detected here with a stat call; the body is fetched lazily.
func (m *MinioFS) Open(name string) (fs.File, error) {
	key, err := m.key("open", name)
	if err != nil {
		return nil, err
	}
	return newStreamingFile(m, key, name)
}

// Stat returns object metadata for the named resource.
func (m *MinioFS) Stat(name string) (fs.FileInfo, error) {
	key, err := m.key("stat", name)
	if err != nil {
		return nil, err
	}

	ctx, cancel := m.requestContext()
	defer cancel()

	info, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, errs.PathError("stat", name, errs.Translate(err))
	}

	return types.NewFileInfo(path.Base(key), info.Size, info.LastModified), nil
}

// ReadFile reads the named object and returns its contents.
func (m *MinioFS) ReadFile(name string) ([]byte, error) {
	f, err := m.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	return io.ReadAll(f)
}

// Exists reports whether the named object exists.
func (m *MinioFS) Exists(name string) (bool, error) {
	_, err := m.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Create returns a buffered writer for the named object.
// The object is uploaded, and therefore created, when the file is closed.
func (m *MinioFS) Create(name string) (core.File, error) {
	key, err := m.key("create", name)
	if err != nil {
		return nil, err
	}
	return newFileWrite(m, key, name), nil
}

// WriteFile uploads data as the named object.
func (m *MinioFS) WriteFile(name string, data []byte, _ fs.FileMode) error {
	file, err := m.Create(name)
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return errs.PathError("writefile", name, err)
	}

	if err := file.Close(); err != nil {
		return err
	}

	return nil
}

// Remove deletes the named object. Deleting an absent object succeeds.
func (m *MinioFS) Remove(name string) error {
	key, err := m.key("remove", name)
	if err != nil {
		return err
	}

	ctx, cancel := m.requestContext()
	defer cancel()

	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return errs.PathError("remove", name, errs.Translate(err))
	}

	return nil
}

// Type returns core.FSTypeRemote.
func (m *MinioFS) Type() core.FSType {
	return core.FSTypeRemote
}

var _ core.FS = (*MinioFS)(nil)
