package minio

import (
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	platformerrors "github.com/jmgilman/textload/errors"
	"github.com/jmgilman/textload/fs/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBucket = "test-bucket"

// fakeS3 is a read-only S3 endpoint serving path-style HEAD and GET requests.
// Every other method is rejected with AccessDenied.
type fakeS3 struct {
	objects map[string]string // "bucket/key" -> content
	denied  map[string]bool
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(r.URL.Path, "/")

	if f.denied[key] || (r.Method != http.MethodHead && r.Method != http.MethodGet) {
		writeS3Error(w, r, http.StatusForbidden, "AccessDenied")
		return
	}

	body, ok := f.objects[key]
	if !ok {
		writeS3Error(w, r, http.StatusNotFound, "NoSuchKey")
		return
	}

	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
	w.Header().Set("Last-Modified", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC).Format(http.TimeFormat))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = io.WriteString(w, body)
	}
}

func writeS3Error(w http.ResponseWriter, r *http.Request, status int, code string) {
	w.Header().Set("x-minio-error-code", code)
	w.Header().Set("x-minio-error-desc", code)
	if r.Method == http.MethodHead {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>%s</Code><Message>%s</Message><Resource>%s</Resource></Error>`,
		code, code, r.URL.Path)
}

// newFakeFS starts a fakeS3 server and returns a MinioFS pointed at it.
func newFakeFS(t *testing.T, fake *fakeS3, prefix string) *MinioFS {
	t.Helper()

	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	mfs, err := NewMinIO(Config{
		Endpoint:       strings.TrimPrefix(srv.URL, "http://"),
		Bucket:         testBucket,
		AccessKey:      "test-access",
		SecretKey:      "test-secret",
		Region:         "us-east-1",
		Prefix:         prefix,
		RequestTimeout: 10 * time.Second,
	})
	require.NoError(t, err)
	return mfs
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "missing bucket",
			cfg:     Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"},
			wantErr: "bucket is required",
		},
		{
			name:    "missing endpoint",
			cfg:     Config{Bucket: "b", AccessKey: "a", SecretKey: "s"},
			wantErr: "endpoint is required",
		},
		{
			name:    "missing access key",
			cfg:     Config{Bucket: "b", Endpoint: "localhost:9000", SecretKey: "s"},
			wantErr: "access key is required",
		},
		{
			name:    "missing secret key",
			cfg:     Config{Bucket: "b", Endpoint: "localhost:9000", AccessKey: "a"},
			wantErr: "secret key is required",
		},
		{
			name:    "negative timeout",
			cfg:     Config{Bucket: "b", Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s", RequestTimeout: -time.Second},
			wantErr: "request timeout must not be negative",
		},
		{
			name: "valid credentials",
			cfg:  Config{Bucket: "b", Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewMinIO_InvalidConfig(t *testing.T) {
	mfs, err := NewMinIO(Config{Endpoint: "localhost:9000"})

	assert.Nil(t, mfs)
	require.Error(t, err)
	assert.Equal(t, platformerrors.CodeInvalidConfig, platformerrors.GetCode(err))
	assert.Contains(t, err.Error(), "bucket is required")
}

func TestNewMinIO_NormalizesPrefix(t *testing.T) {
	mfs, err := NewMinIO(Config{
		Endpoint:  "localhost:9000",
		Bucket:    "b",
		AccessKey: "a",
		SecretKey: "s",
		Prefix:    "/tenant/data/",
	})
	require.NoError(t, err)

	assert.Equal(t, "tenant/data", mfs.prefix)
	assert.Equal(t, core.FSTypeRemote, mfs.Type())
}

func TestMinioFS_RootNamesRejected(t *testing.T) {
	mfs := newFakeFS(t, &fakeS3{}, "")

	for _, name := range []string{"", ".", "/", "a/.."} {
		t.Run(strconv.Quote(name), func(t *testing.T) {
			_, err := mfs.Open(name)
			assert.ErrorIs(t, err, fs.ErrInvalid)

			_, err = mfs.Create(name)
			assert.ErrorIs(t, err, fs.ErrInvalid)
		})
	}
}

func TestMinioFS_Open(t *testing.T) {
	fake := &fakeS3{
		objects: map[string]string{testBucket + "/notes/hello.txt": "Hello World"},
	}
	mfs := newFakeFS(t, fake, "")

	f, err := mfs.Open("notes/hello.txt")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", string(data))

	info, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, "hello.txt", info.Name())
	assert.Equal(t, int64(len("Hello World")), info.Size())
	assert.False(t, info.IsDir())
}

func TestMinioFS_OpenErrors(t *testing.T) {
	fake := &fakeS3{
		objects: map[string]string{testBucket + "/secret.txt": "classified"},
		denied:  map[string]bool{testBucket + "/secret.txt": true},
	}
	mfs := newFakeFS(t, fake, "")

	t.Run("missing object", func(t *testing.T) {
		_, err := mfs.Open("missing.txt")
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)

		var pathErr *fs.PathError
		require.ErrorAs(t, err, &pathErr)
		assert.Equal(t, "open", pathErr.Op)
		assert.Equal(t, "missing.txt", pathErr.Path)
	})

	t.Run("denied object", func(t *testing.T) {
		_, err := mfs.Open("secret.txt")
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrPermission)
		assert.NotErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestMinioFS_ReadFileExistsStat(t *testing.T) {
	fake := &fakeS3{
		objects: map[string]string{testBucket + "/app/config.txt": "key=value\n"},
	}
	mfs := newFakeFS(t, fake, "app")

	data, err := mfs.ReadFile("config.txt")
	require.NoError(t, err)
	assert.Equal(t, "key=value\n", string(data))

	exists, err := mfs.Exists("config.txt")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = mfs.Exists("other.txt")
	require.NoError(t, err)
	assert.False(t, exists)

	info, err := mfs.Stat("config.txt")
	require.NoError(t, err)
	assert.Equal(t, "config.txt", info.Name())
	assert.Equal(t, int64(10), info.Size())
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), info.ModTime().UTC())
}

func TestMinioFS_CreateFailsOnClose(t *testing.T) {
	mfs := newFakeFS(t, &fakeS3{}, "")

	f, err := mfs.Create("new.txt")
	require.NoError(t, err, "Create only buffers")

	err = f.Close()
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrPermission)

	assert.NoError(t, f.Close(), "second Close is a no-op")
}

func TestFile_Buffering(t *testing.T) {
	f := newFileWrite(&MinioFS{bucket: testBucket}, "prefix/new.txt", "new.txt")

	n, err := f.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	info, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, "new.txt", info.Name())
	assert.Equal(t, int64(5), info.Size())
	assert.Equal(t, "new.txt", f.Name())

	_, err = f.Read(make([]byte, 1))
	assert.ErrorIs(t, err, fs.ErrInvalid)

	f.closed = true
	_, err = f.Write([]byte("more"))
	assert.ErrorIs(t, err, fs.ErrClosed)
}

func TestStreamingFile_WriteUnsupported(t *testing.T) {
	f := &streamingFile{name: "hello.txt"}

	_, err := f.Write([]byte("x"))
	assert.ErrorIs(t, err, core.ErrUnsupported)
	assert.Equal(t, "hello.txt", f.Name())
}
