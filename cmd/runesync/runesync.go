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

package main // import "github.com/runefix-labs/runesync/cmd/runesync"

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/runefix-labs/runesync/internal/logging"
	"github.com/runefix-labs/runesync/pkg/cli"
)

var settings = cli.New()

func main() {
	logger := logging.NewLogger(func() bool {
		return settings.Debug
	})
	slog.SetDefault(logger)

	cmd := newRootCmd(os.Stdout, os.Args[1:])
	if err := cmd.Execute(); err != nil {
		if settings.Debug {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
		}
		os.Exit(1)
	}
}
