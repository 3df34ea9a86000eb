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

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/runefix-labs/runesync/pkg/action"
	"github.com/runefix-labs/runesync/pkg/cli/require"
)

const syncDesc = `
This command downloads a published char-table archive and places its table
files in the project tree.

The newest archive published for the requested dataset version is resolved
from the upstream listing and downloaded into the work directory. The
archive is expanded, the JSON table files of its char_table/current
snapshot are copied into the asset directory, and the Unicode version
declaration in the target Go source file is rewritten to match. The
downloaded archive and the extraction scratch are removed afterwards; on
failure they are left behind for inspection.

The dataset version must be an exact semantic version, such as 15.1.0.
`

func newSyncCmd(out io.Writer) *cobra.Command {
	client := action.NewSync(settings)

	cmd := &cobra.Command{
		Use:   "sync VERSION",
		Short: "download a char-table dataset and install it into the project",
		Long:  syncDesc,
		Args:  require.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client.Out = out
			return client.Run(args[0])
		},
	}

	return cmd
}
