package processor

import (
	"context"

	"chris-cli/models"

	"github.com/pkg/errors"
)

// Remove deletes the object at userPath and returns what was deleted.
// Directories are refused unless recursive is set; the store deletes
// subtrees server-side, so a recursive remove is still one delete call
// against the directory object.
func (p *Processor) Remove(ctx context.Context, userPath string, recursive bool) (*models.Existence, error) {
	abs := queryPath(ResolvePath(userPath, p.cwd()))

	target, err := p.Find(ctx, abs)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errors.Wrapf(ErrNotFound, "remove %s", abs)
	}
	if target.Kind == models.KindDir && !recursive {
		return nil, errors.Wrapf(ErrIsDirectory, "remove %s", abs)
	}
	if target.ID == 0 {
		return nil, errors.Errorf("refusing to remove %s: no object id", abs)
	}

	if err := p.client.DeleteResource(ctx, target.ID, target.Kind); err != nil {
		return nil, errors.Wrapf(err, "remove %s", abs)
	}
	return target, nil
}
