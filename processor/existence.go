package processor

import (
	"context"

	"chris-cli/models"

	"github.com/pkg/errors"
)

// Find reports whether the absolute path abs names a remote object, and
// as what kind. It lists the parent with the all-or-nothing policy: an
// inability to list the parent means existence cannot be determined and
// is an error, not "not found". A nil result with nil error means the
// path does not exist.
//
// When one basename matches rows of more than one kind, the directory
// row wins, then file, then link. The store should prevent such
// collisions but does not guarantee it, so the tie-break is fixed here.
// Rows without an object id are never eligible as matches.
func (p *Processor) Find(ctx context.Context, abs string) (*models.Existence, error) {
	parent, base := SplitPath(queryPath(abs))
	if base == "/" {
		// The namespace root is always a directory; it has no row of
		// its own and therefore no id.
		return &models.Existence{Kind: models.KindDir, Name: "/"}, nil
	}

	set, err := p.fetchResourceSet(ctx, parent, AllOrNothing)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot determine existence of %s", abs)
	}

	for _, kind := range models.Kinds {
		for _, row := range set.rows(kind) {
			if row.ID == 0 {
				continue
			}
			if rowName(row, kind) == base {
				return &models.Existence{Kind: kind, ID: row.ID, Name: base}, nil
			}
		}
	}
	return nil, nil
}
