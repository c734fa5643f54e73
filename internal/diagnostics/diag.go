package diagnostics

import "time"

type Severity string

const (
	Info Severity = "info"
	Warn Severity = "warning"
	Err  Severity = "error"
)

// Codes pushed by the inspector.
const (
	CodePlaybackStarted = "PLAYBACK.STARTED"
	CodePlaybackDone    = "PLAYBACK.DONE"
	CodeControlUnknown  = "CONTROL.UNKNOWN"
	CodeControlInvalid  = "CONTROL.INVALID"
	CodeFrameSlow       = "FRAME.SLOW"
)

type Diagnostic struct {
	Severity       Severity       `json:"severity"`
	Code           string         `json:"code"`
	Summary        string         `json:"summary"`
	Detail         string         `json:"detail,omitempty"`
	SceneTime      float64        `json:"scene_t"`
	At             time.Time      `json:"at"`
	LikelyCauses   []string       `json:"likely_causes,omitempty"`
	SuggestedFixes []string       `json:"suggested_fixes,omitempty"`
	Evidence       map[string]any `json:"evidence,omitempty"`
}

// New returns a diagnostic stamped with the current wall time.
func New(sev Severity, code, summary string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Summary: summary, At: time.Now()}
}
