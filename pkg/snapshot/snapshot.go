package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"showdown-server/internal/util"
)

// UpdateEnv is the environment variable that rewrites existing snapshots when set to 1
const UpdateEnv = "SHOWDOWN_UPDATE_SNAPSHOTS"

// Dir is the directory, relative to the package under test, where snapshots are kept
var Dir = "testdata"

var (
	lock      sync.Mutex
	funcCount = make(map[string]int)
)

// ValidateSnapshot compares the JSON encoding of obj against testdata/<func>-<n>.json
// The file is written when it does not exist yet. depth is the number of helper
// frames between the test function and this call.
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()

	filename := nextFilename(depth + 2)

	actual, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not encode snapshot %s: %v", filename, err)
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || (err == nil && util.Getenv(UpdateEnv, "") == "1") {
		write(t, filename, actual)
		return
	} else if err != nil {
		t.Fatalf("could not read snapshot %s: %v", filename, err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(actual), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s, rerun with %s=1 to update", filename, UpdateEnv)
	}
}

// nextFilename names the snapshot after the calling function, numbered by call
func nextFilename(skip int) string {
	pc, _, _, _ := runtime.Caller(skip)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	lock.Lock()
	call := funcCount[funcName]
	funcCount[funcName] = call + 1
	lock.Unlock()

	return filepath.Join(Dir, fmt.Sprintf("%s-%d.json", funcName, call))
}

func write(t *testing.T, filename string, data []byte) {
	t.Helper()

	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatalf("could not create snapshot dir: %v", err)
	}

	if err := os.WriteFile(filename, append(data, '\n'), 0644); err != nil { // nolint:gosec
		t.Fatalf("could not write snapshot %s: %v", filename, err)
	}
}
