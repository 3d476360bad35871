// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"testing"

	"github.com/spatialtools/pomwalk/pkg/platform"
)

// SetHomeDir points the home directory at dir and returns a cleanup function
// restoring the previous environment.
//
// HOME is always set because the default repository root is read from it. On
// Windows USERPROFILE is set as well so os.UserHomeDir agrees.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    t.Cleanup(testutil.SetHomeDir(t, t.TempDir()))
//	    // code that reads $HOME/.m2/repository...
//	}
func SetHomeDir(t testing.TB, dir string) func() {
	t.Helper()

	restoreHome := MustSetenv(t, "HOME", dir)
	if !platform.IsWindows() {
		return restoreHome
	}
	restoreProfile := MustSetenv(t, "USERPROFILE", dir)
	return func() {
		restoreProfile()
		restoreHome()
	}
}
