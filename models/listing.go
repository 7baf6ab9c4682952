package models

import "time"

// ListItem is the normalized view of one directory entry, merged from
// whichever of the three collections the entry came from.
type ListItem struct {
	Name  string       `json:"name"`
	Type  ResourceKind `json:"type"`
	Size  int64        `json:"size"`
	Owner string       `json:"owner"`
	Date  time.Time    `json:"date"`
	// Target is set for links only: the virtual path the link points
	// to, always with a leading slash.
	Target string `json:"target,omitempty"`
}

// Existence reports what lives at a path, with the object id needed for
// follow-up move/delete calls.
type Existence struct {
	Kind ResourceKind `json:"kind"`
	ID   int64        `json:"id"`
	Name string       `json:"name"`
}

// UploadFileInfo is one planned transfer produced by the upload scanner.
type UploadFileInfo struct {
	HostPath  string `json:"host_path"`
	ChrisPath string `json:"chris_path"`
	Size      int64  `json:"size"`
}

// UploadStats accumulates the outcome of an upload batch.
type UploadStats struct {
	TotalFiles    int
	UploadedFiles int
	ErrorFiles    int
	TotalBytes    int64
	SentBytes     int64
}
