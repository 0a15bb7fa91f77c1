// This file is part of Pitchsweep.
//
// Pitchsweep is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pitchsweep is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pitchsweep.  If not, see <https://www.gnu.org/licenses/>.

package resources

import (
	"fmt"
	"os"
	"path/filepath"
)

// the name of the resource directory when it is in the working directory
const localResourcePath = ".pitchsweep"

// the name of the resource directory when it is in the user's configuration
// directory
const configResourcePath = "pitchsweep"

// base returns the base path for all resources.
func base() (string, error) {
	if fi, err := os.Stat(localResourcePath); err == nil && fi.IsDir() {
		return localResourcePath, nil
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	return filepath.Join(cfg, configResourcePath), nil
}

// JoinPath prepends the base resource path to the sub-path. All directories
// necessary to reach the final element of the sub-path are created. The final
// element itself is not touched.
func JoinPath(path ...string) (string, error) {
	b, err := base()
	if err != nil {
		return "", err
	}

	p := filepath.Join(append([]string{b}, path...)...)

	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	return p, nil
}
