package fetch

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// DefaultDir is where fetched archives are unpacked when no directory is
// configured. The name matches what existing HamLib tooling expects.
const DefaultDir = "downloaded_hamlib_files"

// ErrUnmappedSource reports a filename with no known remote location. It
// is raised before any network attempt.
var ErrUnmappedSource = errors.New("no source mapping for file")

// RetrievalError reports a non-success response while fetching an archive.
type RetrievalError struct {
	URL    string
	Status string
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("fetching %s: unexpected status %s", e.URL, e.Status)
}

// Fetcher downloads and unpacks remote HamLib archives into a local
// directory. Each call is a single attempt.
type Fetcher struct {
	dir    string
	client *http.Client
	log    *zap.Logger
}

// NewFetcher builds a Fetcher unpacking into dir, or DefaultDir when dir
// is empty. A nil logger disables logging.
func NewFetcher(dir string, logger *zap.Logger) *Fetcher {
	if dir == "" {
		dir = DefaultDir
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{dir: dir, client: &http.Client{}, log: logger}
}

// FetchAndUnpack resolves filename through sources, downloads the archive
// and unpacks it into the fetcher's directory, which it returns. The
// archive itself is kept next to its contents.
func (f *Fetcher) FetchAndUnpack(ctx context.Context, filename string, sources SourceMap) (string, error) {
	url, ok := sources[filename]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnmappedSource, filename)
	}

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating download dir: %w", err)
	}

	archive, err := f.download(ctx, url)
	if err != nil {
		return "", err
	}
	f.log.Info("downloaded archive",
		zap.String("file", filename),
		zap.String("url", url),
		zap.String("archive", archive))

	if err := unzip(archive, f.dir); err != nil {
		return "", fmt.Errorf("extracting %s: %w", archive, err)
	}
	return f.dir, nil
}

func (f *Fetcher) download(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &RetrievalError{URL: url, Status: resp.Status}
	}

	local := filepath.Join(f.dir, path.Base(strings.TrimSuffix(url, "/")))
	out, err := os.Create(local)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", local, err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return "", fmt.Errorf("writing %s: %w", local, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", local, err)
	}
	return local, nil
}

func unzip(archive, dir string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, file := range r.File {
		if err := extractOne(file, dir); err != nil {
			return err
		}
	}
	return nil
}

func extractOne(file *zip.File, dir string) error {
	target := filepath.Join(dir, file.Name)
	// Entry names come from the archive; keep them inside dir.
	if !strings.HasPrefix(target, filepath.Clean(dir)+string(os.PathSeparator)) {
		return fmt.Errorf("archive entry %q escapes extraction dir", file.Name)
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	in, err := file.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
