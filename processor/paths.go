package processor

import (
	"path"
	"strings"
)

// ResolvePath turns a user-supplied path into an absolute virtual path.
// An empty input returns cwd unchanged; an absolute input overrides cwd;
// anything else is joined onto cwd with POSIX semantics ("." and ".."
// collapse). A trailing slash on the input survives resolution because
// downstream operations read it as directory intent. Resolution is
// idempotent and never consults the remote store.
func ResolvePath(input, cwd string) string {
	if input == "" {
		return cwd
	}

	trailing := strings.HasSuffix(input, "/")

	var resolved string
	if strings.HasPrefix(input, "/") {
		resolved = path.Clean(input)
	} else {
		resolved = path.Join(cwd, input)
	}
	if !strings.HasPrefix(resolved, "/") {
		resolved = "/" + resolved
	}
	if trailing && resolved != "/" {
		resolved += "/"
	}
	return resolved
}

// SplitPath splits an absolute virtual path into its parent directory
// and final segment. Trailing slashes are ignored; the root splits into
// ("/", "/").
func SplitPath(p string) (parent, base string) {
	p = strings.TrimSuffix(p, "/")
	if p == "" {
		p = "/"
	}
	return path.Dir(p), path.Base(p)
}

// queryPath strips the directory-intent slash so a path can be used as
// a remote query parameter.
func queryPath(p string) string {
	if p == "/" {
		return p
	}
	return strings.TrimSuffix(p, "/")
}
