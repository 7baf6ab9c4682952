package models

import "time"

// ResourceKind identifies one of the three remote collections that
// together make up the namespace at any parent path.
type ResourceKind string

const (
	KindDir  ResourceKind = "dirs"
	KindFile ResourceKind = "files"
	KindLink ResourceKind = "links"
)

// Kinds lists every resource kind in existence-check precedence order:
// when one basename matches more than one kind, the earlier kind wins.
var Kinds = []ResourceKind{KindDir, KindFile, KindLink}

// Resource is one raw row returned by the remote store. Fields are a
// loose superset across kinds: directories and links may carry no size
// or owner, and either FName or Path may be the populated name field.
type Resource struct {
	ID            int64     `json:"id"`
	FName         string    `json:"fname"`
	Path          string    `json:"path"`
	FSize         int64     `json:"fsize"`
	OwnerUsername string    `json:"owner_username"`
	CreationDate  time.Time `json:"creation_date"`
}

// PageOptions bounds a single list call.
type PageOptions struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
