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
	"github.com/runefix-labs/runesync/pkg/cli"
	"github.com/runefix-labs/runesync/pkg/repo"
)

// List is the action for listing published char-table archives.
//
// It provides the implementation of 'runesync list'.
type List struct {
	Settings *cli.EnvSettings

	// Repository overrides the archive source. When nil, the repository
	// described by Settings is used.
	Repository *repo.Repository
}

// NewList constructs a new List object with the given environment.
func NewList(settings *cli.EnvSettings) *List {
	return &List{Settings: settings}
}

// Run executes 'runesync list' and returns the published archives, newest
// first.
func (l *List) Run() ([]repo.Archive, error) {
	r := l.Repository
	if r == nil {
		var err error
		if r, err = newRepository(l.Settings); err != nil {
			return nil, err
		}
	}
	return r.Archives()
}
