package processor

import (
	"context"
	"fmt"
	"path"
	"strings"

	"chris-cli/models"
)

// linkSuffix marks link objects in the remote store; it is stripped
// from displayed names.
const linkSuffix = ".chrislink"

// ListOptions shape a listing. An empty SortField sorts by name.
type ListOptions struct {
	SortField string
	Reverse   bool
}

// ListResult is one merged directory listing. Warnings carries per-kind
// fetch diagnostics; a kind that failed contributes zero items and one
// warning rather than failing the listing.
type ListResult struct {
	Path     string
	Items    []models.ListItem
	Warnings []string
}

// List resolves userPath against the current virtual working directory
// and returns the merged, sorted entries of all three resource kinds at
// that path. An empty directory yields an empty item list, not an
// error; this call does not assert that the path itself exists.
func (p *Processor) List(ctx context.Context, userPath string, opts ListOptions) (*ListResult, error) {
	abs := ResolvePath(userPath, p.cwd())

	set, err := p.fetchResourceSet(ctx, queryPath(abs), BestEffort)
	if err != nil {
		return nil, err
	}

	items := make([]models.ListItem, 0, len(set.Dirs)+len(set.Files)+len(set.Links))
	for _, kind := range models.Kinds {
		for _, row := range set.rows(kind) {
			items = append(items, mapRow(row, kind))
		}
	}

	var warnings []string
	for _, kind := range models.Kinds {
		if ferr := set.Failures[kind]; ferr != nil {
			warnings = append(warnings, fmt.Sprintf("listing %s at %s failed: %v", kind, abs, ferr))
		}
	}

	field := opts.SortField
	if field == "" {
		field = "name"
	}
	sorted, err := SortItems(items, field, opts.Reverse)
	if err != nil {
		return nil, err
	}

	return &ListResult{Path: abs, Items: sorted, Warnings: warnings}, nil
}

// mapRow normalizes one raw remote row into a view item. Directories
// and links may lack size and owner; links carry the target in the
// row's path field, normalized to a leading slash.
func mapRow(row models.Resource, kind models.ResourceKind) models.ListItem {
	item := models.ListItem{
		Name:  rowName(row, kind),
		Type:  kind,
		Size:  row.FSize,
		Owner: row.OwnerUsername,
		Date:  row.CreationDate,
	}
	if item.Owner == "" {
		item.Owner = "unknown"
	}
	if kind == models.KindLink {
		target := row.Path
		if !strings.HasPrefix(target, "/") {
			target = "/" + target
		}
		item.Target = target
	}
	return item
}

// rowName derives the display name of a row: the basename of fname or
// path, whichever is present, with the link marker stripped for links.
func rowName(row models.Resource, kind models.ResourceKind) string {
	name := row.FName
	if name == "" {
		name = row.Path
	}
	if name == "" {
		return ""
	}
	name = path.Base(name)
	if kind == models.KindLink {
		name = strings.TrimSuffix(name, linkSuffix)
	}
	return name
}
