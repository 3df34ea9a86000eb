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

	"github.com/runefix-labs/runesync/pkg/cli/require"
)

var globalUsage = `The char-table dataset synchronizer

Common actions for runesync:

- runesync list:    list the archives published for the char-table dataset
- runesync sync:    download a dataset version and place it in the project

Environment variables:

+-----------------------+------------------------------------------------------------------------------+
| Name                  | Description                                                                  |
+-----------------------+------------------------------------------------------------------------------+
| $RUNESYNC_DEBUG       | indicate whether or not runesync is running in Debug mode                    |
| $RUNESYNC_WORKDIR     | set an alternative location for downloads and extraction scratch             |
| $RUNESYNC_ASSET_DIR   | set an alternative destination for the copied table files                    |
| $RUNESYNC_TARGET_FILE | set an alternative Go source file carrying the version declaration           |
| $RUNESYNC_API_BASE    | set an alternative GitHub API base URL                                       |
| $RUNESYNC_AUTH_TOKEN  | set a token for authenticated GitHub API requests ($GITHUB_TOKEN also works) |
+-----------------------+------------------------------------------------------------------------------+
`

func newRootCmd(out io.Writer, args []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "runesync",
		Short:        "The char-table dataset synchronizer.",
		Long:         globalUsage,
		SilenceUsage: true,
		Args:         require.NoArgs,
	}
	flags := cmd.PersistentFlags()

	settings.AddFlags(flags)

	// We can safely ignore any errors that flags.Parse encounters since
	// those errors will be caught later during the call to cmd.Execution.
	// This call is required to gather configuration information prior to
	// execution.
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.Parse(args)

	// Add subcommands
	cmd.AddCommand(
		newSyncCmd(out),
		newListCmd(out),

		newEnvCmd(out),
		newVersionCmd(out),
	)

	return cmd
}
