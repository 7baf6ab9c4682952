package processor

import (
	"context"
	"io"

	"chris-cli/models"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// resourceClient is the remote-store surface the processor consumes.
type resourceClient interface {
	ListResources(ctx context.Context, kind models.ResourceKind, parentPath string, page models.PageOptions) ([]models.Resource, error)
	MoveResource(ctx context.Context, srcPath, dstPath string) error
	DeleteResource(ctx context.Context, id int64, kind models.ResourceKind) error
	TouchFile(ctx context.Context, path string) error
	UploadFile(ctx context.Context, content io.Reader, remoteDir, remoteName string) error
	DownloadFile(ctx context.Context, path string) (io.ReadCloser, error)
}

var (
	// ErrNotFound reports that a target path names no remote object.
	ErrNotFound = errors.New("no such file or directory")
	// ErrIsDirectory reports that a directory was given to an
	// operation that only takes files or links.
	ErrIsDirectory = errors.New("is a directory")
)

// Processor implements the virtual-filesystem operations on top of the
// remote resource store. All state is request-scoped; the current
// virtual working directory is owned by the caller and read through a
// provider function.
type Processor struct {
	client resourceClient
	fs     afero.Fs
	cwd    func() string
	log    *zap.SugaredLogger
}

// Dependencies configuration for creating a processor.
type Dependencies struct {
	Client resourceClient
	FS     afero.Fs
	CWD    func() string
	Logger *zap.SugaredLogger
}

// NewProcessor creates a new virtual-filesystem processor.
func NewProcessor(d *Dependencies) *Processor {
	fs := d.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	cwd := d.CWD
	if cwd == nil {
		cwd = func() string { return "/" }
	}
	log := d.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Processor{
		client: d.Client,
		fs:     fs,
		cwd:    cwd,
		log:    log,
	}
}
