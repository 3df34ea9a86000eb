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

package bundle

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/runefix-labs/runesync/internal/fileutil"
)

const (
	// snapshotDir is where an archive keeps its canonical dataset
	// snapshot.
	snapshotDir = "char_table/current"

	// metadataName is macOS Finder litter that ships in some archives.
	metadataName = ".DS_Store"
)

var (
	// assetGlob selects the table files. forkGlob screens out AppleDouble
	// resource forks, which for a forked table file also end in .json.
	assetGlob = glob.MustCompile("*.json")
	forkGlob  = glob.MustCompile("._*")
)

// CopyAssets copies every table file from an extracted archive under
// scratch into dest, flattening the snapshot tree. Returns the number of
// files copied.
//
// Duplicate base names across subdirectories resolve last writer wins in
// walk order.
func CopyAssets(scratch, dest string) (int, error) {
	snap := filepath.Join(scratch, filepath.FromSlash(snapshotDir))
	if info, err := os.Stat(snap); err != nil || !info.IsDir() {
		return 0, &MissingDirectoryError{Path: snap}
	}

	if err := os.MkdirAll(dest, 0755); err != nil {
		return 0, err
	}

	count := 0
	err := filepath.WalkDir(snap, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !assetGlob.Match(name) || forkGlob.Match(name) || name == metadataName {
			return nil
		}
		if err := copyFile(p, filepath.Join(dest, name)); err != nil {
			return err
		}
		slog.Debug("copied table file", "file", name)
		count++
		return nil
	})
	return count, err
}

// copyFile places the table file atomically. The asset directory never
// holds a partially written file.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	return fileutil.AtomicWriteFile(dst, in, 0644)
}
