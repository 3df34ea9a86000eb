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

// Package stamp rewrites the Unicode version declaration in a Go source
// file after a dataset sync.
//
// The declaration is a three line block:
//
//	// UnicodeVersion is the Unicode version used by this build (auto-synced).
//	// auto-updated: 2025-06-17
//	var UnicodeVersion = NewVersion(15, 1, 0)
//
// Apply locates the declaration by its "var UnicodeVersion" marker and
// replaces it together with up to two comment lines directly above it, so
// the banner is refreshed instead of accumulating. A file without the
// marker gets the block appended.
package stamp

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

const (
	marker     = "var UnicodeVersion = NewVersion("
	banner     = "// UnicodeVersion is the Unicode version used by this build (auto-synced)."
	dateLayout = "2006-01-02"
)

// Update rewrites the declaration in the file at path to carry v and
// today's date. The file is written back in place.
func Update(path string, v *semver.Version) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "could not read %s", path)
	}
	out := Apply(string(b), v, time.Now())
	return errors.Wrapf(os.WriteFile(path, []byte(out), 0644), "could not write %s", path)
}

// Apply returns content with the version declaration replaced, or appended
// when no marker line is present. The result always ends with a newline.
func Apply(content string, v *semver.Version, now time.Time) string {
	block := []string{
		banner,
		"// auto-updated: " + now.Format(dateLayout),
		fmt.Sprintf("%s%d, %d, %d)", marker, v.Major(), v.Minor(), v.Patch()),
	}

	trimmed := strings.TrimRight(content, "\n")
	var lines []string
	if trimmed != "" {
		lines = strings.Split(trimmed, "\n")
	}

	at := -1
	for i, line := range lines {
		if strings.HasPrefix(line, marker) {
			at = i
			break
		}
	}

	if at == -1 {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, block...)
		return strings.Join(lines, "\n") + "\n"
	}

	// Absorb at most two consecutive comment lines directly above the
	// declaration. Anything else above it stays untouched.
	start := at
	for start > at-2 && start > 0 && strings.HasPrefix(strings.TrimSpace(lines[start-1]), "//") {
		start--
	}

	out := make([]string, 0, len(lines)+len(block))
	out = append(out, lines[:start]...)
	out = append(out, block...)
	out = append(out, lines[at+1:]...)
	return strings.Join(out, "\n") + "\n"
}
