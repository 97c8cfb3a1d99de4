package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"path"
	"time"

	"github.com/jmgilman/textload/fs/core"
	"github.com/jmgilman/textload/fs/minio/internal/errs"
	"github.com/jmgilman/textload/fs/minio/internal/types"
	"github.com/minio/minio-go/v7"
)

// File is a write handle for a MinIO object.
// Writes accumulate in memory and are uploaded with a single PutObject on
// Close, so the object only exists once Close returns nil.
type File struct {
	fs     *MinioFS
	key    string // Full S3 key (including prefix)
	name   string // Original name provided to Create
	buffer *bytes.Buffer
	closed bool
}

// newFileWrite creates a File with an empty buffer.
func newFileWrite(mfs *MinioFS, key, name string) *File {
	return &File{
		fs:     mfs,
		key:    key,
		name:   name,
		buffer: new(bytes.Buffer),
	}
}

// Read is not supported on write handles.
func (f *File) Read(_ []byte) (int, error) {
	return 0, errs.PathError("read", f.name, fs.ErrInvalid)
}

// Write appends p to the pending upload.
func (f *File) Write(p []byte) (int, error) {
	if f.closed {
		return 0, errs.PathError("write", f.name, fs.ErrClosed)
	}
	return f.buffer.Write(p)
}

// Stat reports the bytes written so far.
func (f *File) Stat() (fs.FileInfo, error) {
	return types.NewFileInfo(path.Base(f.key), int64(f.buffer.Len()), time.Now()), nil
}

// Close uploads the buffered content. Close is idempotent; only the first
// call uploads.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	ctx, cancel := f.fs.requestContext()
	defer cancel()

	_, err := f.fs.client.PutObject(
		ctx,
		f.fs.bucket,
		f.key,
		bytes.NewReader(f.buffer.Bytes()),
		int64(f.buffer.Len()),
		minio.PutObjectOptions{
			ContentType: "text/plain; charset=utf-8",
		},
	)
	if err != nil {
		return errs.PathError("close", f.name, errs.Translate(err))
	}

	return nil
}

// Name returns the name provided to Create.
func (f *File) Name() string {
	return f.name
}

// streamingFile provides streaming reads without buffering entire objects.
type streamingFile struct {
	name   string
	obj    *minio.Object
	info   minio.ObjectInfo
	cancel context.CancelFunc
	closed bool
}

// newStreamingFile stats the object, so absence and denied access surface at
// open time, then opens the object body for streaming.
func newStreamingFile(mfs *MinioFS, key, name string) (*streamingFile, error) {
	ctx, cancel := mfs.requestContext()

	info, err := mfs.client.StatObject(ctx, mfs.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		cancel()
		return nil, errs.PathError("open", name, errs.Translate(err))
	}

	obj, err := mfs.client.GetObject(ctx, mfs.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		cancel()
		return nil, errs.PathError("open", name, errs.Translate(err))
	}

	return &streamingFile{
		name:   name,
		obj:    obj,
		info:   info,
		cancel: cancel,
	}, nil
}

// Read reads up to len(p) bytes from the object body.
func (f *streamingFile) Read(p []byte) (int, error) {
	if f.closed {
		return 0, errs.PathError("read", f.name, fs.ErrClosed)
	}
	n, err := f.obj.Read(p)
	if err == nil || errors.Is(err, io.EOF) {
		return n, err
	}
	return n, errs.PathError("read", f.name, errs.Translate(err))
}

// Close releases the object body and the request context.
func (f *streamingFile) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	defer f.cancel()
	return f.obj.Close()
}

// Stat returns the metadata captured at open time.
func (f *streamingFile) Stat() (fs.FileInfo, error) {
	return types.NewFileInfo(path.Base(f.info.Key), f.info.Size, f.info.LastModified), nil
}

// Name returns the name provided to Open.
func (f *streamingFile) Name() string {
	return f.name
}

// Write is not supported on read handles.
func (f *streamingFile) Write(_ []byte) (int, error) {
	return 0, errs.PathErrorf("write", f.name, "%w: object opened for reading", core.ErrUnsupported)
}

// Compile-time interface checks.
var (
	_ core.File = (*File)(nil)
	_ core.File = (*streamingFile)(nil)
)
