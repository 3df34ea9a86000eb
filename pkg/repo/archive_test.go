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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArchiveName(t *testing.T) {
	tests := []struct {
		name      string
		timestamp string
		version   string
		ok        bool
	}{
		{"char_table_2025-06-17T08_30_00_v15.1.0.tar.gz", "2025-06-17T08_30_00", "15.1.0", true},
		{"char_table_2025-06-17T08:30:00_v16.0.0.tar.gz", "2025-06-17T08:30:00", "16.0.0", true},
		{"char_table_2025-06-17_v15.1.0.tar.gz", "2025-06-17", "15.1.0", true},
		{"char_table_2025-06-17T08_30_00_v15.1.0.tar.gz.bak", "", "", false},
		{"char_table_v15.1.0.tar.gz", "", "", false},
		{"other_2025-06-17T08_30_00_v15.1.0.tar.gz", "", "", false},
		{"README.md", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, v, ok := ParseArchiveName(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.timestamp, ts)
			assert.Equal(t, tt.version, v)
		})
	}
}

func TestArchivesNewestFirst(t *testing.T) {
	srv := listingServer(t, testListing)

	r := testRepository(t, srv.URL)
	archives, err := r.Archives()
	require.NoError(t, err)

	// The directory and the stray README are dropped.
	require.Len(t, archives, 4)

	var names []string
	for _, a := range archives {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{
		"char_table_2025-06-17T08_30_00_v15.1.0.tar.gz",
		"char_table_2025-06-16T22_10_05_v15.1.0.tar.gz",
		"char_table_2025-06-15T09_00_00_v15.1.0.tar.gz",
		"char_table_2025-01-02T12_00_00_v15.0.0.tar.gz",
	}, names)

	assert.Equal(t, "15.1.0", archives[0].Version)
	assert.Equal(t, "2025-06-17T08_30_00", archives[0].Timestamp)
}
