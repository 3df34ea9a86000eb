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
	"regexp"
	"sort"
)

// archiveNameRE decomposes a well formed archive name into its timestamp
// and version segments.
var archiveNameRE = regexp.MustCompile(`^char_table_([\d\-T_:]+)_v(\d+(?:\.\d+)*)\.tar\.gz$`)

// Archive is a listing entry whose name parses as a published archive.
type Archive struct {
	Entry

	// Timestamp and Version are decoded from the archive name.
	Timestamp string
	Version   string
}

// ParseArchiveName splits an archive file name into its timestamp and
// version segments. ok reports whether the name is a well formed archive
// name at all.
func ParseArchiveName(name string) (timestamp, version string, ok bool) {
	m := archiveNameRE.FindStringSubmatch(name)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// Archives returns every published archive in the listing, newest first.
// Entries that are not archives, such as directories or stray files, are
// skipped.
func (r *Repository) Archives() ([]Archive, error) {
	entries, err := r.Listing()
	if err != nil {
		return nil, err
	}

	var archives []Archive
	for _, e := range entries {
		if e.Type != "file" {
			continue
		}
		ts, v, ok := ParseArchiveName(e.Name)
		if !ok {
			continue
		}
		archives = append(archives, Archive{Entry: e, Timestamp: ts, Version: v})
	}

	sort.Slice(archives, func(i, j int) bool {
		return archives[i].Name > archives[j].Name
	})
	return archives, nil
}
