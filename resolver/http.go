package resolver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// HTTPResolver resolves http(s):// imports over net/http. A nil
// Client defaults to http.DefaultClient.
type HTTPResolver struct {
	Client *http.Client
}

func (r HTTPResolver) client() *http.Client {
	if r.Client != nil {
		return r.Client
	}
	return http.DefaultClient
}

// Find is unsupported by HTTPResolver; pair it with a FileResolver via
// Composite to handle both kinds of import.
func (HTTPResolver) Find(string, []string) (io.ReadCloser, error) {
	return nil, errors.New("resolver: HTTPResolver does not resolve filenames")
}

func (r HTTPResolver) FetchURL(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client().Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("resolver: fetching %s: unexpected status %s", url, resp.Status)
	}
	return resp.Body, nil
}

// BatchPrefetch fetches a batch of http(s):// import URLs
// concurrently, one goroutine per URL with no concurrency limit, and
// returns their bodies keyed by URL. It exists
// because the parser itself consumes imports strictly sequentially
// (spec.md §4.2.1's ordering and cycle-detection rules depend on that);
// a caller that already knows every http(s):// import a document names
// can warm this cache first so the sequential parse never blocks on
// a round trip it could have started earlier.
//
// If any fetch fails, BatchPrefetch returns the first error reported by
// errgroup (the one from the first goroutine to fail), after waiting
// for all in-flight fetches to finish.
func (r HTTPResolver) BatchPrefetch(ctx context.Context, urls []string) (map[string][]byte, error) {
	var g errgroup.Group
	results := make([][]byte, len(urls))
	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			rc, err := r.FetchURL(ctx, url)
			if err != nil {
				return fmt.Errorf("prefetch %s: %w", url, err)
			}
			defer rc.Close()
			var buf bytes.Buffer
			if _, err := io.Copy(&buf, rc); err != nil {
				return fmt.Errorf("prefetch %s: %w", url, err)
			}
			results[i] = buf.Bytes()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(urls))
	for i, url := range urls {
		out[url] = results[i]
	}
	return out, nil
}
