package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunOffset_Text(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunOffset([]string{"-174.2342"}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", exitCode, exitSuccess, stderr.String())
	}
	if !strings.Contains(stdout.String(), "-11:36:56") {
		t.Errorf("expected offset in output, got: %s", stdout.String())
	}
}

func TestRunOffset_JSON(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunOffset([]string{"-format", "json", "90"}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("exit code = %d, want %d", exitCode, exitSuccess)
	}
	if !strings.Contains(stdout.String(), `"offset": "+06:00:00"`) {
		t.Errorf("expected JSON offset field, got: %s", stdout.String())
	}
}

func TestRunOffset_OutOfRange(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunOffset([]string{"200"}, stdout, stderr)

	if exitCode != exitDataError {
		t.Errorf("exit code = %d, want %d", exitCode, exitDataError)
	}
}

func TestRunOffset_NoArgs(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunOffset([]string{}, stdout, stderr)

	if exitCode != exitCommandError {
		t.Errorf("exit code = %d, want %d", exitCode, exitCommandError)
	}
}

func TestRunZone_Text(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunZone([]string{"-name", "Berlin", "13.41"}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", exitCode, exitSuccess, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{"Berlin", "+00:53:38", "LMT", "Solar"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}
}

func TestRunZone_YAML(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunZone([]string{"-format", "yaml", "180"}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("exit code = %d, want %d", exitCode, exitSuccess)
	}
	if !strings.Contains(stdout.String(), "+12:00:00") {
		t.Errorf("expected YAML offset field, got: %s", stdout.String())
	}
}

func TestRunZone_BadFormat(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunZone([]string{"-format", "xml", "0"}, stdout, stderr)

	if exitCode != exitCommandError {
		t.Errorf("exit code = %d, want %d", exitCode, exitCommandError)
	}
}

func writeTestCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places.yaml")
	data := "places:\n  - name: Berlin\n    longitude: 13.41\n    aliases: [Office]\n  - name: Greenwich\n    longitude: 0\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunCatalog_List(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunCatalog([]string{writeTestCatalog(t)}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", exitCode, exitSuccess, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "Berlin") || !strings.Contains(out, "+00:53:38") {
		t.Errorf("expected place listing, got: %s", out)
	}
}

func TestRunCatalog_PlaceFilter(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunCatalog([]string{"-place", "Greenwich", writeTestCatalog(t)}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("exit code = %d, want %d", exitCode, exitSuccess)
	}
	if strings.Contains(stdout.String(), "Berlin") {
		t.Errorf("expected only Greenwich, got: %s", stdout.String())
	}
}

func TestRunCatalog_RegisterWritesSnapshot(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	out := filepath.Join(t.TempDir(), "aliases.json")

	exitCode := RunCatalog([]string{"-register", "-out", out, writeTestCatalog(t)}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", exitCode, exitSuccess, stderr.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	for _, want := range []string{"Berlin", "Office", "Greenwich", "+00:53:38"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("expected %q in snapshot, got: %s", want, data)
		}
	}
}

func TestRunCatalog_RegisterVerboseLogs(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	out := filepath.Join(t.TempDir(), "aliases.json")

	exitCode := RunCatalog([]string{"-verbose", "-register", "-out", out, writeTestCatalog(t)}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", exitCode, exitSuccess, stderr.String())
	}
	for _, want := range []string{"alias registered", "Office", "+00:53:38"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("expected %q in verbose log, got: %s", want, stderr.String())
		}
	}
}

func TestRunCatalog_RegisterQuietByDefault(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	out := filepath.Join(t.TempDir(), "aliases.json")

	exitCode := RunCatalog([]string{"-register", "-out", out, writeTestCatalog(t)}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("exit code = %d, want %d", exitCode, exitSuccess)
	}
	if stderr.Len() != 0 {
		t.Errorf("expected empty stderr without -verbose, got: %s", stderr.String())
	}
}

func TestRunCatalog_RegisterRequiresOut(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunCatalog([]string{"-register", writeTestCatalog(t)}, stdout, stderr)

	if exitCode != exitCommandError {
		t.Errorf("exit code = %d, want %d", exitCode, exitCommandError)
	}
}

func TestRunCatalog_MissingFile(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunCatalog([]string{filepath.Join(t.TempDir(), "nope.yaml")}, stdout, stderr)

	if exitCode != exitDataError {
		t.Errorf("exit code = %d, want %d", exitCode, exitDataError)
	}
}
