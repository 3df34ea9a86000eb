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

package downloader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/runefix-labs/runesync/pkg/getter"
	"github.com/runefix-labs/runesync/pkg/repo"
)

// Downloader handles downloading an archive out of a repository listing.
type Downloader struct {
	// Out is the location to write progress messages.
	Out io.Writer
	// Repository locates archives and carries the transfer client.
	Repository *repo.Repository
}

// DownloadTo retrieves an archive entry and streams it into the dest
// directory under the entry's own name.
//
// Returns the path of the saved file. The body is copied straight to
// disk, so the archive is never held in memory.
func (d *Downloader) DownloadTo(e *repo.Entry, dest string) (string, error) {
	u := d.Repository.ArchiveURL(e)
	fmt.Fprintf(d.Out, "Downloading %s\n", u)

	resp, err := d.Repository.Client.Get(u)
	if err != nil {
		return "", errors.Wrapf(err, "could not download %s", u)
	}
	if err := getter.ResponseError(resp); err != nil {
		return "", err
	}
	defer resp.Body.Close()

	destfile := filepath.Join(dest, e.Name)
	out, err := os.Create(destfile)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return "", errors.Wrapf(err, "could not save %s", destfile)
	}
	return destfile, out.Close()
}
