package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// run executes the root command and returns stdout, stderr and the error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSplit_Args(t *testing.T) {
	out, _, err := run(t, "", "split", `{1, "a,b", {3,4}}`)
	if err != nil {
		t.Fatalf("split error = %v", err)
	}

	want := "1\na,b\n{3,4}\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestSplit_Stdin(t *testing.T) {
	out, _, err := run(t, "{a, b}\nscalar\n", "split")
	if err != nil {
		t.Fatalf("split error = %v", err)
	}

	want := "a\nb\n\nscalar\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestSplit_Separator(t *testing.T) {
	out, _, err := run(t, "", "split", "-s", ";", "{a,b; c}")
	if err != nil {
		t.Fatalf("split error = %v", err)
	}
	if want := "a,b\nc\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestSplit_Malformed(t *testing.T) {
	_, errOut, err := run(t, "", "split", "{1,,2}", "{ok}")
	if err == nil {
		t.Fatal("split error = nil, want error")
	}
	if !strings.Contains(err.Error(), "1 of 2") {
		t.Errorf("error = %q, want count of malformed values", err)
	}
	if !strings.Contains(errOut, "empty element") {
		t.Errorf("stderr = %q, want the parse error", errOut)
	}
}

func TestSplit_MalformedKeepsStdoutClean(t *testing.T) {
	out, errOut, err := run(t, "", "split", "{a}", "{1,,2}", "{b}", `{"c}`)
	if err == nil {
		t.Fatal("split error = nil, want error")
	}
	if want := "a\n\nb\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
	if n := strings.Count(errOut, "cannot parse"); n != 2 {
		t.Errorf("stderr has %d parse errors, want 2:\n%s", n, errOut)
	}
}

func TestSplit_LongStdinLine(t *testing.T) {
	elem := strings.Repeat("x", 100*1024)
	out, _, err := run(t, "{"+elem+", y}\n", "split")
	if err != nil {
		t.Fatalf("split error = %v", err)
	}
	if want := elem + "\ny\n"; out != want {
		t.Errorf("output has %d bytes, want %d", len(out), len(want))
	}
}

func TestSplit_JSON(t *testing.T) {
	out, _, err := run(t, "", "split", "--format", "json", "{x, y}", "plain")
	if err != nil {
		t.Fatalf("split error = %v", err)
	}

	var got []result
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}

	want := []result{
		{Value: "{x, y}", IsArray: true, Elements: []string{"x", "y"}},
		{Value: "plain", IsArray: false, Elements: []string{"plain"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"plain", []string{"join", "a", "b"}, "{a, b}\n"},
		{"compact", []string{"join", "--compact", "a", "b"}, "{a,b}\n"},
		{"quoted", []string{"join", "a,b", "c"}, "{\"a,b\", c}\n"},
		{"empty", []string{"join"}, "{}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("join error = %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestJoin_Unrepresentable(t *testing.T) {
	if _, _, err := run(t, "", "join", `a"b`); err == nil {
		t.Error("join error = nil, want error")
	}
}

func TestInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `
name: service
ports: "{80, 443}"
limits:
  hosts: '{"a,b", c}'
  retries: 3
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	out, _, err := run(t, "", "inspect", path)
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}

	want := "limits.hosts: 2 element(s)\na,b\nc\n\nports: 2 element(s)\n80\n443\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestInspect_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("broken: \"{1, 2\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, errOut, err := run(t, "", "inspect", path)
	if err == nil {
		t.Fatal("inspect error = nil, want error")
	}
	if !strings.Contains(errOut, "broken:") {
		t.Errorf("stderr = %q, want the failing key", errOut)
	}
}

func TestInspect_MissingFile(t *testing.T) {
	if _, _, err := run(t, "", "inspect", filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("inspect error = nil, want error")
	}
}
