package resolver_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uxfio/uxf/resolver"
)

func TestHTTPResolverFetchURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "uxf 1\n[1 2 3]\n")
	}))
	defer srv.Close()

	r := resolver.HTTPResolver{}
	rc, err := r.FetchURL(context.Background(), srv.URL)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "uxf 1\n[1 2 3]\n", string(data))
}

func TestHTTPResolverFetchURLNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	r := resolver.HTTPResolver{}
	_, err := r.FetchURL(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestHTTPResolverFindUnsupported(t *testing.T) {
	r := resolver.HTTPResolver{}
	_, err := r.Find("anything.uxf", nil)
	assert.Error(t, err)
}

// TestBatchPrefetchFetchesAllEndpointsConcurrently asserts every one of N
// endpoints is fetched and its body returned keyed by URL.
func TestBatchPrefetchFetchesAllEndpointsConcurrently(t *testing.T) {
	const n = 8
	mux := http.NewServeMux()
	for i := 0; i < n; i++ {
		i := i
		mux.HandleFunc(fmt.Sprintf("/endpoint%d", i), func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "body-%d", i)
		})
	}
	srv := httptest.NewServer(mux)
	defer srv.Close()

	urls := make([]string, n)
	for i := 0; i < n; i++ {
		urls[i] = fmt.Sprintf("%s/endpoint%d", srv.URL, i)
	}

	r := resolver.HTTPResolver{}
	results, err := r.BatchPrefetch(context.Background(), urls)
	require.NoError(t, err)
	require.Len(t, results, n)
	for i, url := range urls {
		assert.Equal(t, fmt.Sprintf("body-%d", i), string(results[url]))
	}
}

// TestBatchPrefetchErrorFromOneEndpointFailsTheBatch asserts a single
// failing endpoint surfaces an error (the errgroup's first error), while
// every endpoint is still attempted - none are skipped just because a
// sibling fetch failed first.
func TestBatchPrefetchErrorFromOneEndpointFailsTheBatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/good", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	})
	mux.HandleFunc("/bad", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	r := resolver.HTTPResolver{}
	_, err := r.BatchPrefetch(context.Background(), []string{srv.URL + "/good", srv.URL + "/bad"})
	assert.Error(t, err)
}
