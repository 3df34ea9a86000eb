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

package bundle

import (
	"os"

	"github.com/hashicorp/go-multierror"
)

// Cleanup removes the downloaded archive and the scratch tree after a
// successful run. Paths already absent are skipped silently; both
// removals are attempted even if one fails.
func Cleanup(archive, scratch string) error {
	var result error
	if err := os.RemoveAll(archive); err != nil {
		result = multierror.Append(result, err)
	}
	if err := os.RemoveAll(scratch); err != nil {
		result = multierror.Append(result, err)
	}
	return result
}
