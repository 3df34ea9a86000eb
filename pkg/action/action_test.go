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
package action

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runefix-labs/runesync/internal/logging"
	"github.com/runefix-labs/runesync/pkg/cli"
	"github.com/runefix-labs/runesync/pkg/getter"
	"github.com/runefix-labs/runesync/pkg/repo"
)

var verbose = flag.Bool("test.log", false, "enable test logging (debug by default)")

const testArchiveName = "char_table_2025-06-17T08_30_00_v15.1.0.tar.gz"

const targetSeed = `package chartable

// UnicodeVersion is the Unicode version used by this build (auto-synced).
// auto-updated: 2024-09-10
var UnicodeVersion = NewVersion(14, 0, 0)
`

// testSettings builds an environment rooted in a fresh temp dir with a
// seeded target file carrying an out of date version declaration.
func testSettings(t *testing.T) *cli.EnvSettings {
	t.Helper()

	logger := logging.NewLogger(func() bool {
		return *verbose
	})
	slog.SetDefault(logger)

	tmp := t.TempDir()
	settings := cli.New()
	settings.WorkDir = filepath.Join(tmp, "work")
	settings.AssetDir = filepath.Join(tmp, "assets")
	settings.TargetFile = filepath.Join(tmp, "consts.go")
	require.NoError(t, os.WriteFile(settings.TargetFile, []byte(targetSeed), 0644))
	return settings
}

func buildArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	for name, body := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Mode:     0644,
			Size:     int64(len(body)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

// newTestRepository serves a one archive listing whose download URL points
// back at the test server, then returns a repository wired to it.
func newTestRepository(t *testing.T, payload []byte) *repo.Repository {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/repos/"):
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `[{"name":%q,"path":"char_table/archive/%s","size":%d,"type":"file","download_url":"%s/raw/%s"}]`,
				testArchiveName, testArchiveName, len(payload), srv.URL, testArchiveName)
		case strings.HasPrefix(r.URL.Path, "/raw/"):
			w.Write(payload)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	g, err := getter.NewHTTPGetter()
	require.NoError(t, err)

	cfg := repo.DefaultConfig()
	cfg.APIBase = srv.URL
	return repo.NewRepository(cfg, g)
}
