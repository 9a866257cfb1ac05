// internal/integration/integration_test.go
package integration

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"peptidechop/internal/app"
	"peptidechop/pkg/api"
)

// GFP (P42212), wrapped the way UniProt serves it.
const gfpFASTA = `>sp|P42212|GFP_AEQVI Green fluorescent protein
MSKGEELFTGVVPILVELDGDVNGHKFSVSGEGEGDATYGKLTLKFICTTGKLPVPWPTL
VTTFSYGVQCFSRYPDHMKQHDFFKSAMPEGYVQERTIFFKDDGNYKTRAEVKFEGDTLV
NRIELKGIDFKEDGNILGHKLEYNYNSHNVYIMADKQKNGIKVNFKIRHNIEDGSVQLAD
HYQQNTPIGDGPVLLPDNHYLSTQSALSKDPNEKRDHMVLLEFVTAAGITHGMDELYK
`

func write(t *testing.T, fn, data string) string {
	t.Helper()
	fn = filepath.Join(t.TempDir(), fn)
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func writeGz(t *testing.T, fn, data string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(data)); err != nil {
		t.Fatalf("gzip: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return write(t, fn, buf.String())
}

func TestEndToEnd(t *testing.T) {
	fa := write(t, "gfp.fa", gfpFASTA)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{fa}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 2*29 {
		t.Fatalf("expected 29 fasta records, got %d lines", len(lines))
	}
	if lines[0] != ">sp|P42212|GFP_AEQVI:peptide_1" || lines[1] != "MSKGEELFTGVVPILVEL" {
		t.Fatalf("unexpected first record: %q %q", lines[0], lines[1])
	}
	if last := lines[len(lines)-1]; last != "LEFVTAAGITHGMDELYK" {
		t.Fatalf("unexpected last peptide %q", last)
	}
}

func TestGzipJSONL(t *testing.T) {
	plain := write(t, "gfp.fa", gfpFASTA)
	gz := writeGz(t, "gfp.fa.gz", gfpFASTA)

	run := func(fn string) []api.PeptideV1 {
		var out, errB bytes.Buffer
		if code := app.Run([]string{"-o", "jsonl", fn}, &out, &errB); code != 0 {
			t.Fatalf("exit %d err %s", code, errB.String())
		}
		var got []api.PeptideV1
		sc := bufio.NewScanner(&out)
		for sc.Scan() {
			var p api.PeptideV1
			if err := json.Unmarshal(sc.Bytes(), &p); err != nil {
				t.Fatalf("bad jsonl line %q: %v", sc.Text(), err)
			}
			got = append(got, p)
		}
		return got
	}

	a, b := run(plain), run(gz)
	if len(a) != 29 || len(a) != len(b) {
		t.Fatalf("got %d plain and %d gzip peptides", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("peptide %d differs: %+v vs %+v", i, a[i], b[i])
		}
		p := a[i]
		if p.Index != i+1 || p.SequenceID != "sp|P42212|GFP_AEQVI" {
			t.Fatalf("bad numbering: %+v", p)
		}
		if p.Length != len(p.Peptide) || p.End-p.Start != p.Length {
			t.Fatalf("inconsistent coordinates: %+v", p)
		}
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 16; i++ {
		fmt.Fprintf(&b, ">gfp%d\n%s", i, strings.SplitN(gfpFASTA, "\n", 2)[1])
	}
	fa := write(t, "par.fa", b.String())

	run := func(threads int) string {
		var out, errB bytes.Buffer
		code := app.Run([]string{
			"--threads", fmt.Sprint(threads),
			"--output", "json",
			fa,
		}, &out, &errB)
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errB.String())
		}
		return out.String()
	}

	serial := run(1)
	parallel := run(4)

	if serial != parallel {
		t.Fatalf("parallel output differs from serial\nserial: %s\nparallel:%s", serial, parallel)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PEPTIDECHOP_PEPTIDE_LENGTH", "30")
	t.Setenv("PEPTIDECHOP_OVERLAP", "0")
	fa := write(t, "gfp.fa", gfpFASTA)

	var out, errB bytes.Buffer
	if code := app.Run([]string{"-o", "text", "--disallowed-ends=", fa}, &out, &errB); code != 0 {
		t.Fatalf("exit %d err %s", code, errB.String())
	}
	// 238 residues in windows of 30: 8 peptides.
	if n := strings.Count(out.String(), "\n"); n != 8 {
		t.Fatalf("expected 8 peptides, got %d:\n%s", n, out.String())
	}
}
