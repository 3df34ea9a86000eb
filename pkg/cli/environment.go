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

/*Package cli describes the operating environment for the runesync CLI.

Settings are read from RUNESYNC_* environment variables at construction
and may be overridden by command line flags afterwards.
*/
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/pflag"
)

const (
	defaultWorkDir    = ".runesync"
	defaultAssetDir   = "assets"
	defaultTargetFile = "consts.go"
)

// EnvSettings describes all of the environment settings.
type EnvSettings struct {
	// Debug indicates whether or not runesync is running in Debug mode.
	Debug bool
	// WorkDir holds the downloaded archive, the extraction scratch tree
	// and the lock file.
	WorkDir string
	// AssetDir is the directory the table files are copied into.
	AssetDir string
	// TargetFile is the Go source file carrying the version declaration.
	TargetFile string
	// APIBase overrides the GitHub API base URL. Used for mirrors.
	APIBase string
	// AuthToken is an optional bearer token attached to GitHub requests.
	AuthToken string
}

func New() *EnvSettings {
	env := &EnvSettings{
		WorkDir:    envOr("RUNESYNC_WORKDIR", defaultWorkDir),
		AssetDir:   envOr("RUNESYNC_ASSET_DIR", defaultAssetDir),
		TargetFile: envOr("RUNESYNC_TARGET_FILE", defaultTargetFile),
		APIBase:    os.Getenv("RUNESYNC_API_BASE"),
		AuthToken:  envOr("RUNESYNC_AUTH_TOKEN", os.Getenv("GITHUB_TOKEN")),
	}
	env.Debug, _ = strconv.ParseBool(os.Getenv("RUNESYNC_DEBUG"))
	return env
}

// AddFlags binds flags to the given flagset.
func (s *EnvSettings) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&s.Debug, "debug", s.Debug, "enable verbose output")
	fs.StringVar(&s.WorkDir, "work-dir", s.WorkDir, "directory used for downloads, extraction and locking")
	fs.StringVar(&s.AssetDir, "asset-dir", s.AssetDir, "directory the table files are copied into")
	fs.StringVar(&s.TargetFile, "target", s.TargetFile, "path to the Go source file carrying the version declaration")
}

func envOr(name, def string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return def
}

func (s *EnvSettings) EnvVars() map[string]string {
	return map[string]string{
		"RUNESYNC_BIN":         os.Args[0],
		"RUNESYNC_DEBUG":       fmt.Sprint(s.Debug),
		"RUNESYNC_WORKDIR":     s.WorkDir,
		"RUNESYNC_ASSET_DIR":   s.AssetDir,
		"RUNESYNC_TARGET_FILE": s.TargetFile,
		"RUNESYNC_API_BASE":    s.APIBase,
		"RUNESYNC_AUTH_TOKEN":  s.AuthToken,
	}
}

// ScratchDir is the directory archives are unpacked into.
func (s *EnvSettings) ScratchDir() string {
	return filepath.Join(s.WorkDir, "extract")
}

// LockPath is the lock file guarding the work directory.
func (s *EnvSettings) LockPath() string {
	return filepath.Join(s.WorkDir, "sync.lock")
}
