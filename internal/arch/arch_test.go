// internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"seqcomplex/internal/alphabet": {
			"seqcomplex/internal/kmer", "seqcomplex/internal/complexity",
			"seqcomplex/internal/seqio", "seqcomplex/internal/pipeline",
			"seqcomplex/internal/output", "seqcomplex/internal/writers",
			"seqcomplex/internal/cli", "seqcomplex/internal/app", "seqcomplex/cmd/",
		},
		"seqcomplex/internal/kmer": {
			"seqcomplex/internal/complexity", "seqcomplex/internal/seqio",
			"seqcomplex/internal/pipeline", "seqcomplex/internal/output",
			"seqcomplex/internal/writers",
			"seqcomplex/internal/cli", "seqcomplex/internal/app", "seqcomplex/cmd/",
		},
		"seqcomplex/internal/complexity": {
			"seqcomplex/internal/seqio", "seqcomplex/internal/pipeline",
			"seqcomplex/internal/output", "seqcomplex/internal/writers",
			"seqcomplex/internal/cli", "seqcomplex/internal/app", "seqcomplex/cmd/",
		},
		"seqcomplex/internal/seqio": {
			"seqcomplex/internal/pipeline", "seqcomplex/internal/output",
			"seqcomplex/internal/writers",
			"seqcomplex/internal/cli", "seqcomplex/internal/app", "seqcomplex/cmd/",
		},
		"seqcomplex/internal/pipeline": {
			"seqcomplex/internal/output", "seqcomplex/internal/writers",
			"seqcomplex/internal/cli", "seqcomplex/internal/app", "seqcomplex/cmd/",
		},
		"seqcomplex/internal/output": {
			"seqcomplex/internal/writers",
			"seqcomplex/internal/cli", "seqcomplex/internal/app", "seqcomplex/cmd/",
		},
		"seqcomplex/internal/writers": {
			"seqcomplex/internal/cli", "seqcomplex/internal/app", "seqcomplex/cmd/",
		},
		"seqcomplex/internal/cli": {
			"seqcomplex/internal/pipeline", "seqcomplex/internal/output",
			"seqcomplex/internal/writers", "seqcomplex/internal/app", "seqcomplex/cmd/",
		},
		"seqcomplex/internal/filter": {
			"seqcomplex/internal/filtercli", "seqcomplex/internal/filterapp",
			"seqcomplex/cmd/",
		},
		"seqcomplex/internal/filtercli": {
			"seqcomplex/internal/filterapp", "seqcomplex/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "seqcomplex/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			// exact match or subpackage; "filter" must not claim "filtercli"
			if imp != prefix && !strings.HasPrefix(imp, prefix+"/") {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "seqcomplex/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
