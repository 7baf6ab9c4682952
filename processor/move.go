package processor

import (
	"context"
	"path"
	"strings"

	"chris-cli/models"

	"github.com/pkg/errors"
)

// Move relocates src to dst with shell mv semantics and returns the
// final destination path. The destination counts as a directory when it
// already exists as one, or when the user's original string carries a
// trailing slash; in either case the source basename is appended.
// Otherwise dst is the new full path, a rename. The remote move is not
// issued unless the source is confirmed to exist.
func (p *Processor) Move(ctx context.Context, src, dst string) (string, error) {
	cwd := p.cwd()
	srcAbs := queryPath(ResolvePath(src, cwd))
	dstAbs := queryPath(ResolvePath(dst, cwd))

	source, err := p.Find(ctx, srcAbs)
	if err != nil {
		return "", err
	}
	if source == nil {
		return "", errors.Wrapf(ErrNotFound, "move %s", srcAbs)
	}

	// The raw user string keeps the directory-intent hint that
	// resolution may have stripped.
	intoDir := strings.HasSuffix(dst, "/")
	if !intoDir {
		target, err := p.Find(ctx, dstAbs)
		if err != nil {
			return "", err
		}
		intoDir = target != nil && target.Kind == models.KindDir
	}

	final := dstAbs
	if intoDir {
		final = path.Join(dstAbs, path.Base(srcAbs))
	}

	if err := p.client.MoveResource(ctx, srcAbs, final); err != nil {
		return "", errors.Wrapf(err, "move %s to %s", srcAbs, final)
	}
	return final, nil
}
