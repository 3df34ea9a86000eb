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

// Package action contains the logic for each action that runesync can perform.
//
// This is a library for calling top-level runesync actions like 'sync' or
// 'list'. Actions approximately match the command line invocations that the
// runesync client uses.
package action

import (
	"github.com/runefix-labs/runesync/pkg/cli"
	"github.com/runefix-labs/runesync/pkg/getter"
	"github.com/runefix-labs/runesync/pkg/repo"
)

// newRepository builds the archive repository client described by settings.
func newRepository(settings *cli.EnvSettings) (*repo.Repository, error) {
	cfg := repo.DefaultConfig()
	if settings.APIBase != "" {
		cfg.APIBase = settings.APIBase
	}
	client, err := getter.NewHTTPGetter(getter.WithAuthToken(settings.AuthToken))
	if err != nil {
		return nil, err
	}
	return repo.NewRepository(cfg, client), nil
}
