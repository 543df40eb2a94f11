package filterintegration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seqcomplex/internal/filterapp"
)

func run(t *testing.T, stdin string, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := filterapp.Run(argv, strings.NewReader(stdin), &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestFilterKeepsAboveThreshold(t *testing.T) {
	code, out, stderr := run(t, "a\t10\nb\t10\nc\t10\nd\t1\n", "--quiet")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	if out != "a\nb\nc\n" {
		t.Fatalf("got %q, want a b c", out)
	}
}

func TestFilterInvert(t *testing.T) {
	code, out, stderr := run(t, "a\t10\nb\t10\nc\t10\nd\t1\n", "--quiet", "--invert", "--threshold", "0")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	if out != "d\n" {
		t.Fatalf("got %q, want d", out)
	}
}

func TestFilterFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.tsv")
	if err := os.WriteFile(path, []byte("x\t5\ny\t5\nz\t-100\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	code, out, stderr := run(t, "", "--quiet", "--threshold", "0", path)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	if out != "x\ny\n" {
		t.Fatalf("got %q", out)
	}
}

func TestFilterTooFewScoresExitsTwo(t *testing.T) {
	code, _, stderr := run(t, "a\t1\n", "--quiet")
	if code != 2 {
		t.Fatalf("exit %d, want 2 (stderr: %s)", code, stderr)
	}
}

func TestFilterMalformedLineExitsThree(t *testing.T) {
	code, _, _ := run(t, "a\t1\nnot a score line\n", "--quiet")
	if code != 3 {
		t.Fatalf("exit %d, want 3", code)
	}
}

func TestFilterBadFlagExitsTwo(t *testing.T) {
	code, _, _ := run(t, "", "--threshold", "abc")
	if code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
}
