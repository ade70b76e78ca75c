// Package snapshot compares values against JSON files kept under testdata
package snapshot

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update-snapshots", false, "rewrite snapshot files instead of comparing them")

var (
	calls     = make(map[string]int)
	callsLock sync.Mutex
)

// Validate compares obj, encoded as indented JSON, with testdata/<test>-<n>.json
// n counts the snapshots taken by the same test, starting at 0. A missing file is written
// and the check passes.
func Validate(t *testing.T, obj interface{}, msgAndArgs ...interface{}) {
	t.Helper()

	filename := nextFilename(t.Name())

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	require.NoError(t, err)

	expects, err := os.ReadFile(filename)
	if *update || os.IsNotExist(err) {
		require.NoError(t, write(filename, objJSON))
		return
	}
	require.NoError(t, err)

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func nextFilename(testName string) string {
	name := strings.ReplaceAll(testName, "/", "_")

	callsLock.Lock()
	call := calls[name]
	calls[name] = call + 1
	callsLock.Unlock()

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))
}

func write(filename string, b []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(b, '\n'), 0644)
}
