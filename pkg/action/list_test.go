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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runefix-labs/runesync/pkg/cli"
)

func TestListRun(t *testing.T) {
	payload := buildArchive(t, map[string]string{"char_table/current/a.json": "{}"})

	client := NewList(cli.New())
	client.Repository = newTestRepository(t, payload)

	archives, err := client.Run()
	require.NoError(t, err)
	require.Len(t, archives, 1)
	assert.Equal(t, testArchiveName, archives[0].Name)
	assert.Equal(t, "15.1.0", archives[0].Version)
	assert.Equal(t, "2025-06-17T08_30_00", archives[0].Timestamp)
}
