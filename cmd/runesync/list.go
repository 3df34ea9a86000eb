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
	"fmt"
	"io"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/runefix-labs/runesync/pkg/action"
	"github.com/runefix-labs/runesync/pkg/cli/require"
)

const listDesc = `
This command lists the archives published for the char-table dataset,
newest first. Each archive carries the dataset version it was built from
and the timestamp it was published at.
`

func newListCmd(out io.Writer) *cobra.Command {
	client := action.NewList(settings)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "list published char-table archives",
		Long:    listDesc,
		Aliases: []string{"ls"},
		Args:    require.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			archives, err := client.Run()
			if err != nil {
				return err
			}

			table := uitable.New()
			table.MaxColWidth = 60
			table.AddRow("VERSION", "PUBLISHED", "SIZE", "NAME")
			for _, a := range archives {
				table.AddRow(a.Version, a.Timestamp, a.Size, a.Name)
			}
			fmt.Fprintln(out, table)
			return nil
		},
	}

	return cmd
}
