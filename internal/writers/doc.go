// Package writers turns chopped fragments into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (FASTA/text/TSV/JSON/JSONL/YAML/pretty).
//   - Engine stays domain-only; Pipeline stays orchestration-only.
//   - The pretty format delegates drawing to internal/pretty.
//   - JSON/JSONL/YAML go through pkg/api (v1) for a stable wire format.
package writers
