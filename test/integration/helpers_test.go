//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	BinDir     string // fake npm lives here; prepended to PATH
	WorkDir    string // where the workspace is created
	SandboxDir string // parent of the temporary sandbox
	LogFile    string // every fake npm call is appended here
}

// fakeNPM answers --version with $FAKE_NPM_VERSION. A silent install plants an
// ng script that creates the project directory (--directory, or the first
// argument after "new"); a plain install drops a marker into the current
// directory.
const fakeNPM = `#!/bin/sh
echo "npm $*" >> "$FAKE_NPM_LOG"
if [ "$1" = "--version" ]; then
  echo "$FAKE_NPM_VERSION"
  exit 0
fi
if [ "$1" = "install" ] && [ "$2" = "--silent" ]; then
  [ -n "$FAKE_NPM_FAIL_SANDBOX" ] && exit 7
  mkdir -p node_modules/.bin
  cat > node_modules/.bin/ng <<'NG'
#!/bin/sh
echo "ng $*" >> "$FAKE_NPM_LOG"
[ -n "$FAKE_NG_FAIL" ] && exit 3
shift
dir="$1"
for a in "$@"; do
  case "$a" in --directory=*) dir="${a#--directory=}" ;; esac
done
mkdir -p "$dir"
NG
  chmod +x node_modules/.bin/ng
  exit 0
fi
if [ "$1" = "install" ]; then
  echo "$npm_config_registry" > .installed
  exit 0
fi
exit 1
`

// setupTestEnv installs the fake npm on PATH and isolates every directory the
// run touches.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake npm is a POSIX shell script")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	env := &testEnv{
		BinDir:     t.TempDir(),
		WorkDir:    t.TempDir(),
		SandboxDir: t.TempDir(),
	}
	env.LogFile = filepath.Join(t.TempDir(), "calls.log")

	writeExecutable(t, filepath.Join(env.BinDir, "npm"), fakeNPM)

	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("FAKE_NPM_LOG", env.LogFile)
	t.Setenv("FAKE_NPM_VERSION", "6.4.1")

	return env
}

// calls returns the logged fake npm and ng invocations in order.
func (e *testEnv) calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(e.LogFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading call log: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func writeExecutable(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected %s to not exist", path)
	}
}
