package driver

import (
	"encoding/json"
	"fmt"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/observ"
	"github.com/qtyi/luna-sub005/internal/source"
)

// noFile is a FileID no FileSet hands out; formatters print it as "<unknown>".
const noFile = source.FileID(^uint32(0))

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// TimingDiagnostic packs a timer report into an informational diagnostic.
// The JSON payload travels in the single note so machine-readable outputs
// carry it unchanged.
func TimingDiagnostic(kind, path string, report observ.Report) diag.Diagnostic {
	if kind == "" {
		kind = "pipeline"
	}
	payload := timingPayload{Kind: kind, Path: path, TotalMS: report.TotalMS, Phases: report.Phases}
	msg := fmt.Sprintf("timings (%s): total %.2f ms", payload.Kind, payload.TotalMS)
	if payload.Path != "" {
		msg = fmt.Sprintf("%s, %s", msg, payload.Path)
	}

	d := diag.New(diag.SevInfo, diag.ObsTimings, source.Span{File: noFile}, msg)
	if data, err := json.Marshal(payload); err == nil {
		d = d.WithNote(source.Span{File: noFile}, string(data))
	}
	return d
}
