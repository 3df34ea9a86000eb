/*
Copyright The Runesync Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package repo

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runefix-labs/runesync/pkg/getter"
)

// testListing is a contents-API response holding three archives for
// 15.1.0 at different publication times, one for another version, one
// directory and one stray file.
const testListing = `[
  {"name":"char_table_2025-06-15T09_00_00_v15.1.0.tar.gz","path":"char_table/archive/char_table_2025-06-15T09_00_00_v15.1.0.tar.gz","size":11240,"type":"file","download_url":"https://example.com/a1"},
  {"name":"char_table_2025-06-17T08_30_00_v15.1.0.tar.gz","path":"char_table/archive/char_table_2025-06-17T08_30_00_v15.1.0.tar.gz","size":11248,"type":"file","download_url":"https://example.com/a3"},
  {"name":"char_table_2025-06-16T22_10_05_v15.1.0.tar.gz","path":"char_table/archive/char_table_2025-06-16T22_10_05_v15.1.0.tar.gz","size":11244,"type":"file","download_url":"https://example.com/a2"},
  {"name":"char_table_2025-01-02T12_00_00_v15.0.0.tar.gz","path":"char_table/archive/char_table_2025-01-02T12_00_00_v15.0.0.tar.gz","size":11001,"type":"file","download_url":"https://example.com/old"},
  {"name":"retired","path":"char_table/archive/retired","size":0,"type":"dir","download_url":""},
  {"name":"README.md","path":"char_table/archive/README.md","size":120,"type":"file","download_url":"https://example.com/readme"}
]`

func testRepository(t *testing.T, base string) *Repository {
	t.Helper()

	g, err := getter.NewHTTPGetter()
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.APIBase = base
	return NewRepository(cfg, g)
}

func listingServer(t *testing.T, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/runefix-labs/char-table/contents/char_table/archive", r.URL.Path)
		assert.Equal(t, "main", r.URL.Query().Get("ref"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestResolveVersionPicksNewest(t *testing.T) {
	srv := listingServer(t, testListing)

	r := testRepository(t, srv.URL)
	e, err := r.ResolveVersion("15.1.0")
	require.NoError(t, err)

	assert.Equal(t, "char_table_2025-06-17T08_30_00_v15.1.0.tar.gz", e.Name)
	assert.Equal(t, "https://example.com/a3", e.DownloadURL)
	assert.Equal(t, int64(11248), e.Size)
}

func TestResolveVersionNotFound(t *testing.T) {
	srv := listingServer(t, testListing)

	r := testRepository(t, srv.URL)
	_, err := r.ResolveVersion("16.0.0")
	require.Error(t, err)

	var nfe *NotFoundError
	require.True(t, errors.As(err, &nfe))
	assert.Equal(t, "16.0.0", nfe.Version)
	assert.Contains(t, err.Error(), "no archive found for version 16.0.0")
}

func TestResolveVersionExactMatchOnly(t *testing.T) {
	srv := listingServer(t, testListing)

	r := testRepository(t, srv.URL)

	// 15.1 is a prefix of 15.1.0 but names only match whole.
	_, err := r.ResolveVersion("15.1")
	var nfe *NotFoundError
	require.True(t, errors.As(err, &nfe))
}

func TestResolveVersionQuotesDots(t *testing.T) {
	// A version's dots must not act as regexp wildcards, or this name
	// would resolve for 15.1.0.
	crafted := `[{"name":"char_table_2025-06-17T08_30_00_v15x1x0.tar.gz","path":"p","size":1,"type":"file","download_url":""}]`
	srv := listingServer(t, crafted)

	r := testRepository(t, srv.URL)
	_, err := r.ResolveVersion("15.1.0")

	var nfe *NotFoundError
	require.True(t, errors.As(err, &nfe))
}

func TestListingFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := testRepository(t, srv.URL)
	_, err := r.Listing()
	require.Error(t, err)

	var fetchErr *getter.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
}

func TestListingParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"message":"Not Found"}`)
	}))
	defer srv.Close()

	r := testRepository(t, srv.URL)
	_, err := r.Listing()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not parse listing")
}

func TestArchiveURL(t *testing.T) {
	r := NewRepository(DefaultConfig(), nil)

	withURL := &Entry{
		Name:        "char_table_2025-06-17T08_30_00_v15.1.0.tar.gz",
		DownloadURL: "https://example.com/direct",
	}
	assert.Equal(t, "https://example.com/direct", r.ArchiveURL(withURL))

	bare := &Entry{Name: "char_table_2025-06-17T08_30_00_v15.1.0.tar.gz"}
	assert.Equal(t,
		"https://raw.githubusercontent.com/runefix-labs/char-table/main/char_table/archive/char_table_2025-06-17T08_30_00_v15.1.0.tar.gz",
		r.ArchiveURL(bare))
}
