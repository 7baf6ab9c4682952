package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"

	"chris-cli/models"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// ChrisClient client for working with the resource store API
type ChrisClient struct {
	BaseURL string
	client  *resty.Client
}

// searchEnvelope is the paginated response of a search endpoint.
type searchEnvelope struct {
	Count   int               `json:"count"`
	Results []models.Resource `json:"results"`
}

// NewChrisClient creates a new store client with the given API token.
func NewChrisClient(baseURL, token string) *ChrisClient {
	baseURL = strings.TrimSuffix(baseURL, "/")

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Accept", "application/json")
	if token != "" {
		client.SetHeader("Authorization", "Token "+token)
	}

	return &ChrisClient{
		BaseURL: baseURL,
		client:  client,
	}
}

// Authenticate checks that the API accepts the configured token.
func (c *ChrisClient) Authenticate(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		return errors.Wrap(err, "failed to connect to store")
	}

	if resp.StatusCode() != http.StatusOK {
		return errors.Errorf("authentication failed: status %d", resp.StatusCode())
	}

	return nil
}

// ListResources lists one resource kind scoped to parentPath. Rows are
// returned as-is; ordering is up to the store.
func (c *ChrisClient) ListResources(ctx context.Context, kind models.ResourceKind, parentPath string, page models.PageOptions) ([]models.Resource, error) {
	if page.Limit <= 0 {
		page.Limit = 100
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("path", parentPath).
		SetQueryParam("limit", strconv.Itoa(page.Limit)).
		SetQueryParam("offset", strconv.Itoa(page.Offset)).
		Get(fmt.Sprintf("/%s/search/", kind))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", kind)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, errors.Errorf("list %s failed: status %d", kind, resp.StatusCode())
	}

	var envelope searchEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s response", kind)
	}

	return envelope.Results, nil
}

// MoveResource relocates the object at srcPath to dstPath.
func (c *ChrisClient) MoveResource(ctx context.Context, srcPath, dstPath string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"src_path": srcPath,
			"dst_path": dstPath,
		}).
		Post("/files/move/")
	if err != nil {
		return errors.Wrap(err, "failed to move resource")
	}

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		return errors.Errorf("move failed: status %d", resp.StatusCode())
	}

	return nil
}

// DeleteResource deletes one object by id within its kind collection.
func (c *ChrisClient) DeleteResource(ctx context.Context, id int64, kind models.ResourceKind) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/%s/%d/", kind, id))
	if err != nil {
		return errors.Wrap(err, "failed to delete resource")
	}

	if resp.StatusCode() != http.StatusNoContent && resp.StatusCode() != http.StatusOK {
		return errors.Errorf("delete failed: status %d", resp.StatusCode())
	}

	return nil
}

// TouchFile creates or refreshes an empty file at absPath.
func (c *ChrisClient) TouchFile(ctx context.Context, absPath string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"path": absPath}).
		Post("/files/touch/")
	if err != nil {
		return errors.Wrap(err, "failed to touch file")
	}

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		return errors.Errorf("touch failed: status %d", resp.StatusCode())
	}

	return nil
}

// UploadFile uploads one file body as remoteDir/remoteName.
func (c *ChrisClient) UploadFile(ctx context.Context, content io.Reader, remoteDir, remoteName string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetFileReader("fname", remoteName, content).
		SetFormData(map[string]string{
			"upload_path": path.Join(remoteDir, remoteName),
		}).
		Post("/uploadedfiles/")
	if err != nil {
		return errors.Wrap(err, "failed to upload file")
	}

	if resp.StatusCode() != http.StatusCreated && resp.StatusCode() != http.StatusOK {
		return errors.Errorf("upload failed: status %d", resp.StatusCode())
	}

	return nil
}

// DownloadFile streams the content of the file at absPath. The caller
// must close the returned body.
func (c *ChrisClient) DownloadFile(ctx context.Context, absPath string) (io.ReadCloser, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetQueryParam("path", absPath).
		Get("/files/download/")
	if err != nil {
		return nil, errors.Wrap(err, "failed to download file")
	}

	if resp.StatusCode() != http.StatusOK {
		resp.RawBody().Close()
		return nil, errors.Errorf("download failed: status %d", resp.StatusCode())
	}

	return resp.RawBody(), nil
}
