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
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/gofrs/flock"
	"github.com/pkg/errors"

	"github.com/runefix-labs/runesync/pkg/bundle"
	"github.com/runefix-labs/runesync/pkg/cli"
	"github.com/runefix-labs/runesync/pkg/downloader"
	"github.com/runefix-labs/runesync/pkg/repo"
	"github.com/runefix-labs/runesync/pkg/stamp"
)

// Sync is the action for bringing a published char-table dataset into the
// project tree.
//
// It provides the implementation of 'runesync sync'.
type Sync struct {
	Settings *cli.EnvSettings

	// Repository overrides the archive source. When nil, the repository
	// described by Settings is used.
	Repository *repo.Repository

	Out io.Writer
}

// NewSync creates a new Sync object with the given environment.
func NewSync(settings *cli.EnvSettings) *Sync {
	return &Sync{Settings: settings, Out: os.Stdout}
}

// Run executes 'runesync sync' for the given dataset version.
//
// On failure the downloaded archive and the extraction scratch directory
// are left behind for inspection. They are removed by the next run.
func (s *Sync) Run(rawVersion string) error {
	v, err := semver.StrictNewVersion(rawVersion)
	if err != nil {
		return errors.Wrapf(err, "invalid dataset version %q", rawVersion)
	}

	r := s.Repository
	if r == nil {
		if r, err = newRepository(s.Settings); err != nil {
			return err
		}
	}

	// Ensure the work directory exists as it is required for file locking
	if err := os.MkdirAll(s.Settings.WorkDir, os.ModePerm); err != nil && !os.IsExist(err) {
		return err
	}

	// Acquire a file lock for process synchronization
	fileLock := flock.New(s.Settings.LockPath())
	lockCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	locked, err := fileLock.TryLockContext(lockCtx, time.Second)
	if err == nil && locked {
		defer fileLock.Unlock()
	}
	if err != nil {
		return errors.Wrap(err, "unable to lock work directory")
	}

	fmt.Fprintf(s.Out, "Resolving char-table archive for version %s\n", v)
	e, err := r.ResolveVersion(v.String())
	if err != nil {
		return err
	}

	dl := downloader.Downloader{
		Out:        s.Out,
		Repository: r,
	}
	saved, err := dl.DownloadTo(e, s.Settings.WorkDir)
	if err != nil {
		return err
	}

	scratch := s.Settings.ScratchDir()
	if err := bundle.Extract(saved, scratch); err != nil {
		return err
	}

	n, err := bundle.CopyAssets(scratch, s.Settings.AssetDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.Out, "Copied %d table files to %s\n", n, s.Settings.AssetDir)

	if err := stamp.Update(s.Settings.TargetFile, v); err != nil {
		return err
	}
	fmt.Fprintf(s.Out, "Updated version declaration in %s\n", s.Settings.TargetFile)

	if err := bundle.Cleanup(saved, scratch); err != nil {
		return errors.Wrap(err, "sync succeeded but cleanup failed")
	}

	fmt.Fprintf(s.Out, "Dataset %s is in place\n", v)
	return nil
}
