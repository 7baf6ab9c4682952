package processor

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"chris-cli/models"

	"github.com/spf13/afero"
)

type uploadCall struct {
	dir  string
	name string
	body string
}

// fakeClient is an in-memory stand-in for the remote store. Rows are
// matched by basename, so tests populate only the rows relevant to the
// paths they touch.
type fakeClient struct {
	mu sync.Mutex

	rows map[models.ResourceKind][]models.Resource
	errs map[models.ResourceKind]error

	content map[string]string

	moves     [][2]string
	deletes   []string
	touched   []string
	uploads   []uploadCall
	uploadErr map[string]error
}

func (f *fakeClient) ListResources(_ context.Context, kind models.ResourceKind, _ string, _ models.PageOptions) ([]models.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs[kind]; err != nil {
		return nil, err
	}
	return f.rows[kind], nil
}

func (f *fakeClient) MoveResource(_ context.Context, srcPath, dstPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.moves = append(f.moves, [2]string{srcPath, dstPath})
	return nil
}

func (f *fakeClient) DeleteResource(_ context.Context, id int64, kind models.ResourceKind) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, fmt.Sprintf("%s/%d", kind, id))
	return nil
}

func (f *fakeClient) TouchFile(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched = append(f.touched, path)
	return nil
}

func (f *fakeClient) UploadFile(_ context.Context, content io.Reader, remoteDir, remoteName string) error {
	body, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, uploadCall{dir: remoteDir, name: remoteName, body: string(body)})
	if err := f.uploadErr[remoteName]; err != nil {
		return err
	}
	return nil
}

func (f *fakeClient) DownloadFile(_ context.Context, path string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	body, ok := f.content[path]
	if !ok {
		return nil, fmt.Errorf("no content at %s", path)
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func newTestProcessor(client *fakeClient, cwd string) *Processor {
	if cwd == "" {
		cwd = "/"
	}
	return NewProcessor(&Dependencies{
		Client: client,
		FS:     afero.NewMemMapFs(),
		CWD:    func() string { return cwd },
	})
}
