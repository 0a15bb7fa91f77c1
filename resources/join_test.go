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

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/pitchsweep/resources"
	"github.com/jetsetilly/pitchsweep/test"
)

func TestLocalJoinPath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	tmp := t.TempDir()
	test.DemandSuccess(t, os.Chdir(tmp))
	test.DemandSuccess(t, os.Mkdir(".pitchsweep", 0o700))

	p, err := resources.JoinPath("recordings", "out.wav")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(".pitchsweep", "recordings", "out.wav"))

	// the directory has been created but not the file
	fi, err := os.Stat(filepath.Join(".pitchsweep", "recordings"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())
	_, err = os.Stat(p)
	test.ExpectSuccess(t, os.IsNotExist(err))
}
