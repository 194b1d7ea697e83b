package integration

import (
	"os"
	"strings"
	"testing"

	"github.com/wnxy/LogLibrary/utils/filex"
)

// workDir moves the test into a fresh directory so each test gets its
// own Log directory. The previous working directory is restored when
// the test ends; testing.T.Chdir would do this but needs Go 1.24.
func workDir(t *testing.T) string {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("cannot read working directory: %v", err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("cannot enter %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			// Tests cannot safely continue outside their working directory
			panic(err)
		}
	})
	return dir
}

// readRecords returns the non-empty lines of a log file
func readRecords(t *testing.T, path string) []string {
	t.Helper()

	lines, err := filex.ReadLines(path)
	requireNoError(t, err, "Failed to read log file")

	var records []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			records = append(records, line)
		}
	}
	return records
}

// requireNoError fails the test if err is not nil
func requireNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", msg, err)
	}
}

// requireTrue fails the test if condition is false
func requireTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Fatalf("Expected true: %s", msg)
	}
}

// requireEqual fails the test if expected != actual
func requireEqual(t *testing.T, expected, actual interface{}, msg string) {
	t.Helper()
	if expected != actual {
		t.Fatalf("%s: expected %v, got %v", msg, expected, actual)
	}
}

// requireContains fails the test if s does not contain substr
func requireContains(t *testing.T, s, substr, msg string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Fatalf("%s: %q does not contain %q", msg, s, substr)
	}
}
