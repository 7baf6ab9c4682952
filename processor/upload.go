package processor

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"chris-cli/models"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ScanUploads enumerates the transfers needed to place localPath under
// the remote path remotePath. A single file lands directly under the
// remote path. A directory keeps its own basename, Unix-cp style:
// uploading /a/b/mydir to /x produces files under /x/mydir/..., never
// flattened into /x. Every regular file under the root appears exactly
// once; symlinks and special files are skipped. Sizes are read at scan
// time and not re-checked before transfer.
func (p *Processor) ScanUploads(localPath, remotePath string) ([]models.UploadFileInfo, error) {
	remoteAbs := queryPath(ResolvePath(remotePath, p.cwd()))

	info, err := p.fs.Stat(localPath)
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", localPath)
	}

	if !info.IsDir() {
		return []models.UploadFileInfo{{
			HostPath:  localPath,
			ChrisPath: path.Join(remoteAbs, filepath.Base(localPath)),
			Size:      info.Size(),
		}}, nil
	}

	root := path.Join(remoteAbs, filepath.Base(filepath.Clean(localPath)))
	var uploads []models.UploadFileInfo
	walkErr := afero.Walk(p.fs, localPath, func(hostPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(localPath, hostPath)
		if err != nil {
			return err
		}
		uploads = append(uploads, models.UploadFileInfo{
			HostPath:  hostPath,
			ChrisPath: path.Join(root, filepath.ToSlash(rel)),
			Size:      fi.Size(),
		})
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrapf(walkErr, "walk %s", localPath)
	}
	return uploads, nil
}

// Upload scans localPath and transfers each file one at a time in scan
// order, so the progress counter advances linearly. A failed file is
// counted and logged, not fatal to the batch.
func (p *Processor) Upload(ctx context.Context, localPath, remotePath string) (models.UploadStats, error) {
	var stats models.UploadStats

	uploads, err := p.ScanUploads(localPath, remotePath)
	if err != nil {
		return stats, err
	}
	stats.TotalFiles = len(uploads)
	for _, u := range uploads {
		stats.TotalBytes += u.Size
	}

	for i, u := range uploads {
		if err := p.uploadOne(ctx, u); err != nil {
			p.log.Warnf("upload %s: %v", u.HostPath, err)
			stats.ErrorFiles++
			continue
		}
		stats.UploadedFiles++
		stats.SentBytes += u.Size
		p.log.Infof("uploaded %s -> %s (%d/%d files, %d/%d bytes)",
			u.HostPath, u.ChrisPath, i+1, stats.TotalFiles, stats.SentBytes, stats.TotalBytes)
	}
	return stats, nil
}

func (p *Processor) uploadOne(ctx context.Context, u models.UploadFileInfo) error {
	f, err := p.fs.Open(u.HostPath)
	if err != nil {
		return errors.Wrapf(err, "open %s", u.HostPath)
	}
	defer f.Close()

	dir, name := path.Split(u.ChrisPath)
	dir = strings.TrimSuffix(dir, "/")
	if dir == "" {
		dir = "/"
	}
	return p.client.UploadFile(ctx, f, dir, name)
}
