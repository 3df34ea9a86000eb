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

// Package repo reads the archive listing of the char-table repository.
//
// Archives are published as files in a regular GitHub repository and
// discovered through the contents API, which returns one typed entry per
// file instead of markup that would need scraping.
package repo // import "github.com/runefix-labs/runesync/pkg/repo"

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/pkg/errors"

	"github.com/runefix-labs/runesync/pkg/getter"
)

const (
	// DefaultOwner, DefaultRepo and DefaultRef locate the published
	// char-table archives.
	DefaultOwner = "runefix-labs"
	DefaultRepo  = "char-table"
	DefaultRef   = "main"

	// DefaultArchiveDir is the in-repo directory holding the tarballs.
	DefaultArchiveDir = "char_table/archive"

	defaultAPIBase = "https://api.github.com"
	defaultRawBase = "https://raw.githubusercontent.com"

	// acceptHeader asks the contents API for its stable JSON form.
	acceptHeader = "application/vnd.github+json"
)

// Config describes the upstream repository archives are published in.
type Config struct {
	Owner string
	Repo  string
	// Ref is the branch, tag or commit the listing is read at.
	Ref string
	// ArchiveDir is the in-repo directory holding the tarballs.
	ArchiveDir string
	// APIBase and RawBase address the GitHub API and raw content hosts.
	// Override them for mirrors and tests.
	APIBase string
	RawBase string
}

// DefaultConfig returns the canonical char-table coordinates.
func DefaultConfig() *Config {
	return &Config{
		Owner:      DefaultOwner,
		Repo:       DefaultRepo,
		Ref:        DefaultRef,
		ArchiveDir: DefaultArchiveDir,
		APIBase:    defaultAPIBase,
		RawBase:    defaultRawBase,
	}
}

// Entry is one item of a directory listing as returned by the GitHub
// contents API.
type Entry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Size        int64  `json:"size"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// NotFoundError indicates that no published archive matches the requested
// dataset version.
type NotFoundError struct {
	Version string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no archive found for version %s", e.Version)
}

// Repository reads the published archive listing.
type Repository struct {
	Config *Config
	Client getter.Getter
}

// NewRepository creates a Repository over the given coordinates.
func NewRepository(cfg *Config, client getter.Getter) *Repository {
	return &Repository{Config: cfg, Client: client}
}

// ListingURL returns the contents-API location of the archive directory.
func (r *Repository) ListingURL() string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s",
		r.Config.APIBase, r.Config.Owner, r.Config.Repo, r.Config.ArchiveDir, r.Config.Ref)
}

// Listing fetches the archive directory listing.
func (r *Repository) Listing() ([]Entry, error) {
	u := r.ListingURL()
	resp, err := r.Client.Get(u, getter.WithAcceptHeader(acceptHeader))
	if err != nil {
		return nil, errors.Wrapf(err, "could not read listing at %s", u)
	}
	if err := getter.ResponseError(resp); err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, errors.Wrapf(err, "could not parse listing at %s", u)
	}
	return entries, nil
}

// archivePattern matches the archive names published for one dataset
// version. The timestamp segment is fixed width and zero padded, so the
// newest of several matches has the lexicographically greatest name.
func archivePattern(version string) (*regexp.Regexp, error) {
	return regexp.Compile(`^char_table_[\d\-T_:]+_v` + regexp.QuoteMeta(version) + `\.tar\.gz$`)
}

// ResolveVersion picks the newest archive published for the given dataset
// version. A version can be republished, for example after a packaging
// fix, which is why several archives may carry the same version string.
func (r *Repository) ResolveVersion(version string) (*Entry, error) {
	pattern, err := archivePattern(version)
	if err != nil {
		return nil, err
	}

	entries, err := r.Listing()
	if err != nil {
		return nil, err
	}

	var newest *Entry
	for i := range entries {
		e := &entries[i]
		if e.Type != "file" || !pattern.MatchString(e.Name) {
			continue
		}
		if newest == nil || e.Name > newest.Name {
			newest = e
		}
	}
	if newest == nil {
		return nil, &NotFoundError{Version: version}
	}

	slog.Debug("resolved archive", "version", version, "name", newest.Name)
	return newest, nil
}

// ArchiveURL returns the raw content location of an archive entry.
func (r *Repository) ArchiveURL(e *Entry) string {
	if e.DownloadURL != "" {
		return e.DownloadURL
	}
	return fmt.Sprintf("%s/%s/%s/%s/%s/%s",
		r.Config.RawBase, r.Config.Owner, r.Config.Repo, r.Config.Ref, r.Config.ArchiveDir, e.Name)
}
