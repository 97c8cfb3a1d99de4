package loader

import (
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"unicode/utf8"

	"github.com/jmgilman/textload/errors"
	"github.com/jmgilman/textload/fs/core"
)

var (
	// ErrInvalidText is the cause of a ReasonReadFailed error when content is
	// not valid UTF-8.
	ErrInvalidText = stderrors.New("content is not valid UTF-8")

	// ErrIsDirectory is the cause of a ReasonReadFailed error when the name
	// opens a directory rather than a resource.
	ErrIsDirectory = stderrors.New("resource is a directory")

	// ErrEmptyName is the cause of a ReasonOther error when the resource name
	// is empty. Storage is not touched in that case.
	ErrEmptyName = stderrors.New("resource name is empty")
)

// Storage is the collaborator a Loader reads from and creates in.
// Every core.FS provider satisfies it.
//
// Open must report absence with an error satisfying
// errors.Is(err, fs.ErrNotExist). A resource returned by Create exists once
// the file has been closed without error.
type Storage interface {
	Open(name string) (fs.File, error)
	Create(name string) (core.File, error)
}

// Loader loads text resources from a Storage.
type Loader struct {
	storage      Storage
	logger       *slog.Logger
	validateUTF8 bool
}

// New returns a Loader over storage.
func New(storage Storage, opts ...Option) *Loader {
	l := &Loader{
		storage:      storage,
		logger:       slog.New(slog.DiscardHandler),
		validateUTF8: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadOrCreate returns the full text of the named resource. If the resource
// does not exist it is created empty and "" is returned without reading it
// back.
//
// Failures are ReasonCreateFailed (creation failed), ReasonReadFailed
// (opened but unreadable) or ReasonOther (open failed for another reason).
// LoadOrCreate never returns ReasonNotFound.
func (l *Loader) LoadOrCreate(name string) (string, error) {
	content, err := l.load(name)
	if err == nil {
		return content, nil
	}
	if ReasonOf(err) != ReasonNotFound {
		l.logFailure(name, err)
		return "", err
	}

	l.logger.Debug("resource not found, creating", "resource", name)
	if err := l.create(name); err != nil {
		l.logFailure(name, err)
		return "", err
	}

	l.logger.Info("created missing resource", "resource", name)
	return "", nil
}

// LoadStrict returns the full text of the named resource without any
// recovery. A missing resource is ReasonNotFound and is not created.
func (l *Loader) LoadStrict(name string) (string, error) {
	content, err := l.load(name)
	if err != nil {
		l.logFailure(name, err)
		return "", err
	}
	return content, nil
}

// load opens and reads name, releasing the handle on every path.
func (l *Loader) load(name string) (string, error) {
	if name == "" {
		return "", failure(ReasonOther, "open", name, "invalid resource name", ErrEmptyName)
	}

	l.logger.Debug("opening resource", "resource", name)

	f, err := l.storage.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", failure(ReasonNotFound, "open", name, "resource not found", err)
		}
		return "", failure(ReasonOther, "open", name, "failed to open resource", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			l.logger.Debug("failed to close resource", "resource", name, "error", err)
		}
	}()

	// Some backends open directories and read them as empty.
	if info, err := f.Stat(); err == nil && info.IsDir() {
		return "", failure(ReasonReadFailed, "read", name, "failed to read resource", ErrIsDirectory)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", failure(ReasonReadFailed, "read", name, "failed to read resource", err)
	}
	if l.validateUTF8 && !utf8.Valid(data) {
		return "", failure(ReasonReadFailed, "read", name, "resource is not valid text", ErrInvalidText)
	}

	l.logger.Debug("loaded resource", "resource", name, "bytes", len(data))
	return string(data), nil
}

// create creates name empty. Creation is complete only once Close succeeds.
func (l *Loader) create(name string) error {
	f, err := l.storage.Create(name)
	if err != nil {
		return failure(ReasonCreateFailed, "create", name, "failed to create resource", err)
	}
	if err := f.Close(); err != nil {
		return failure(ReasonCreateFailed, "create", name, "failed to create resource", err)
	}
	return nil
}

func (l *Loader) logFailure(name string, err error) {
	level := slog.LevelWarn
	if ReasonOf(err) == ReasonNotFound {
		level = slog.LevelDebug
	}
	l.logger.Log(context.Background(), level, "resource load failed",
		"resource", name,
		"reason", ReasonOf(err),
		"error", err,
	)
}

// failure builds the PlatformError returned for reason.
func failure(reason Reason, op, name, message string, cause error) errors.PlatformError {
	return errors.WrapWithContext(cause, reason.Code(), message, map[string]interface{}{
		"resource": name,
		"op":       op,
	})
}
