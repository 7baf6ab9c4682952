package processor

import (
	"context"
	"sync"

	"chris-cli/models"

	"github.com/pkg/errors"
)

// FetchPolicy declares how a three-kind fetch treats a failing query.
type FetchPolicy int

const (
	// AllOrNothing fails the whole fetch when any kind's query fails.
	// Used where partial results would be misleading, e.g. existence
	// checks.
	AllOrNothing FetchPolicy = iota
	// BestEffort degrades a failed kind to zero rows and records the
	// error as a diagnostic instead of aborting.
	BestEffort
)

// pageLimit bounds a single list call; generous enough that typical
// directories fit in one page.
const pageLimit = 1000

// ResourceSet holds the rows of the three collections under one parent
// path. Failures is populated only under BestEffort.
type ResourceSet struct {
	Dirs     []models.Resource
	Files    []models.Resource
	Links    []models.Resource
	Failures map[models.ResourceKind]error
}

func (rs *ResourceSet) rows(kind models.ResourceKind) []models.Resource {
	switch kind {
	case models.KindDir:
		return rs.Dirs
	case models.KindFile:
		return rs.Files
	case models.KindLink:
		return rs.Links
	}
	return nil
}

// fetchResourceSet queries the three resource kinds under parentPath
// concurrently. The three queries always run in parallel; only the join
// policy differs between call sites.
func (p *Processor) fetchResourceSet(ctx context.Context, parentPath string, policy FetchPolicy) (*ResourceSet, error) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		results  = make(map[models.ResourceKind][]models.Resource, len(models.Kinds))
		failures = make(map[models.ResourceKind]error)
	)

	for _, kind := range models.Kinds {
		wg.Add(1)
		go func(kind models.ResourceKind) {
			defer wg.Done()
			rows, err := p.client.ListResources(ctx, kind, parentPath, models.PageOptions{Limit: pageLimit})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures[kind] = err
				return
			}
			results[kind] = rows
		}(kind)
	}
	wg.Wait()

	if policy == AllOrNothing {
		for _, kind := range models.Kinds {
			if err := failures[kind]; err != nil {
				return nil, errors.Wrapf(err, "listing %s under %s", kind, parentPath)
			}
		}
		failures = nil
	}

	return &ResourceSet{
		Dirs:     results[models.KindDir],
		Files:    results[models.KindFile],
		Links:    results[models.KindLink],
		Failures: failures,
	}, nil
}
