// internal/writers/structured.go
package writers

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"

	"peptidechop/internal/engine"
	"peptidechop/internal/jsonlutil"
	"peptidechop/internal/jsonutil"
	"peptidechop/pkg/api"
)

func init() {
	Register("jsonl", "jsonl", streamJSONL)
	Register("json", "json", writeJSON)
	Register("yaml", "yaml", writeYAML)
}

// streamJSONL streams each fragment as one api.PeptideV1 line.
func streamJSONL(w io.Writer, in <-chan engine.Fragment, opt Options) error {
	return jsonlutil.Encode(w, in,
		func(f engine.Fragment) api.PeptideV1 { return ToAPI(f, opt.SourceFile) },
		IsBrokenPipe,
	)
}

// writeJSON buffers everything and writes one indented array.
func writeJSON(w io.Writer, in <-chan engine.Fragment, opt Options) error {
	return jsonutil.EncodePretty(w, collectAPI(in, opt.SourceFile))
}

// writeYAML buffers everything and writes one YAML sequence.
func writeYAML(w io.Writer, in <-chan engine.Fragment, opt Options) error {
	bw := bufio.NewWriter(w)
	enc := yaml.NewEncoder(bw)
	enc.SetIndent(2)
	if err := enc.Encode(collectAPI(in, opt.SourceFile)); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return bw.Flush()
}
