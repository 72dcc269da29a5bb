// Package http adapts the Downloader port onto net/http, fetching the
// IWSLT'15 English-Vietnamese corpus from its public mirror.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/nmtkit/nmtlaunch/internal/domain"
	"github.com/nmtkit/nmtlaunch/internal/ports"
)

// DatasetDownloader fetches corpus and vocabulary files into a target
// directory. Files already present are left alone so repeated downloads are
// cheap and never clobber a corpus mid-training.
type DatasetDownloader struct {
	client  ports.HTTPClient
	baseURL string
	files   []string
	logger  ports.Logger
}

// NewDatasetDownloader creates a downloader for the given base URL and
// file list (as produced by domain.DatasetFiles).
func NewDatasetDownloader(client ports.HTTPClient, baseURL string, files []string, logger ports.Logger) *DatasetDownloader {
	if baseURL == "" {
		baseURL = domain.DefaultDatasetURL
	}
	// Trailing slash would double up in URL joins below.
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return &DatasetDownloader{
		client:  client,
		baseURL: baseURL,
		files:   files,
		logger:  logger,
	}
}

// Download fetches each missing dataset file into dir, creating dir first.
// The first failed fetch aborts the download; files fetched so far remain.
func (d *DatasetDownloader) Download(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	for _, name := range d.files {
		dst := filepath.Join(dir, name)
		if fileExists(dst) {
			d.logger.Debug("dataset file present, skipping", ports.String("file", name))
			continue
		}
		if err := d.fetch(ctx, name, dst); err != nil {
			return fmt.Errorf("download %s: %w", name, err)
		}
		d.logger.Info("downloaded dataset file", ports.String("file", name))
	}
	return nil
}

// fetch writes the remote file atomically: temp file in the same directory,
// then rename, so a partial download never looks like a corpus file.
func (d *DatasetDownloader) fetch(ctx context.Context, name, dst string) error {
	url := d.baseURL + "/" + name

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), filepath.Base(dst)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
