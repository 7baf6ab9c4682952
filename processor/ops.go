package processor

import (
	"context"
	"io"

	"chris-cli/models"

	"github.com/pkg/errors"
)

// Touch creates or updates an empty file at userPath and returns the
// absolute path touched.
func (p *Processor) Touch(ctx context.Context, userPath string) (string, error) {
	abs := queryPath(ResolvePath(userPath, p.cwd()))
	if err := p.client.TouchFile(ctx, abs); err != nil {
		return "", errors.Wrapf(err, "touch %s", abs)
	}
	return abs, nil
}

// Cat streams the content of the file or link target at userPath. The
// caller owns the returned reader.
func (p *Processor) Cat(ctx context.Context, userPath string) (io.ReadCloser, error) {
	abs := queryPath(ResolvePath(userPath, p.cwd()))

	target, err := p.Find(ctx, abs)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errors.Wrapf(ErrNotFound, "cat %s", abs)
	}
	if target.Kind == models.KindDir {
		return nil, errors.Wrapf(ErrIsDirectory, "cat %s", abs)
	}

	body, err := p.client.DownloadFile(ctx, abs)
	if err != nil {
		return nil, errors.Wrapf(err, "cat %s", abs)
	}
	return body, nil
}

// ChangeDir validates that userPath names an existing directory and
// returns its absolute form. Persisting the new working directory is
// the caller's concern.
func (p *Processor) ChangeDir(ctx context.Context, userPath string) (string, error) {
	abs := queryPath(ResolvePath(userPath, p.cwd()))

	target, err := p.Find(ctx, abs)
	if err != nil {
		return "", err
	}
	if target == nil {
		return "", errors.Wrapf(ErrNotFound, "cd %s", abs)
	}
	if target.Kind != models.KindDir {
		return "", errors.Errorf("cd %s: not a directory", abs)
	}
	return abs, nil
}
