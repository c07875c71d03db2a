package schedule

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	cfgDir := filepath.Join(dir, ".toolplan")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	path := filepath.Join(cfgDir, "tools.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), `
tools:
  - name: publish_report
    kind: write
    resource: output_path
  - name: fetch_metrics
    kind: read
    resource: dashboard_path
`)

	a := newTestAnalyzer()
	loaded, err := a.LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if loaded != 2 {
		t.Errorf("loaded = %d, want 2", loaded)
	}

	// The declared tools now participate in resource classification.
	x := call("1", "publish_report", `{"output_path":"/reports/daily.html"}`)
	y := call("2", "fetch_metrics", `{"dashboard_path":"/reports/daily.html"}`)
	if got := a.Classify(x, y); got != Resource {
		t.Errorf("Classify after config load = %v, want %v", got, Resource)
	}
}

func TestLoadFromFileUnknownKind(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), `
tools:
  - name: deploy
    kind: destructive
`)

	a := newTestAnalyzer()
	if _, err := a.LoadFromFile(path); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestLoadFromFileMissingName(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), `
tools:
  - kind: write
`)

	a := newTestAnalyzer()
	if _, err := a.LoadFromFile(path); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestLoadFromFileInvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "tools: [unclosed")

	a := newTestAnalyzer()
	if _, err := a.LoadFromFile(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestLoadFromDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `
tools:
  - name: deploy_service
    kind: state
`)

	a := newTestAnalyzer()
	loaded, err := a.LoadFromDirectory(dir)
	if err != nil {
		t.Fatalf("LoadFromDirectory failed: %v", err)
	}
	if loaded != 1 {
		t.Errorf("loaded = %d, want 1", loaded)
	}
	if a.kindOf("deploy_service") != KindState {
		t.Errorf("kind = %v, want %v", a.kindOf("deploy_service"), KindState)
	}
}

func TestLoadFromDirectoryMissingFile(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer()
	loaded, err := a.LoadFromDirectory(t.TempDir())
	if err != nil {
		t.Errorf("missing config should not be an error, got %v", err)
	}
	if loaded != 0 {
		t.Errorf("loaded = %d, want 0", loaded)
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    ToolKind
		wantErr bool
	}{
		{"read", KindRead, false},
		{"write", KindWrite, false},
		{"state", KindState, false},
		{"none", KindNone, false},
		{"", KindNone, false},
		{"bogus", KindNone, true},
	}
	for _, tt := range tests {
		got, err := parseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("parseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
