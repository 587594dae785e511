package mrcp

import "strings"

// Recorder method ids (§2.1).
const (
	RecorderMethodSetParams = iota
	RecorderMethodGetParams
	RecorderMethodRecord
	RecorderMethodStop
	RecorderMethodStartInputTimers
)

// Recorder event ids.
const (
	RecorderEventStartOfInput = iota
	RecorderEventRecordComplete
)

var recorderMethodNames = []string{
	RecorderMethodSetParams:        "SET-PARAMS",
	RecorderMethodGetParams:        "GET-PARAMS",
	RecorderMethodRecord:           "RECORD",
	RecorderMethodStop:             "STOP",
	RecorderMethodStartInputTimers: "START-INPUT-TIMERS",
}

var recorderEventNames = []string{
	RecorderEventStartOfInput:   "START-OF-INPUT",
	RecorderEventRecordComplete: "RECORD-COMPLETE",
}

// RecorderResource implements Resource for "recorder" (§2.1).
type RecorderResource struct{}

func (RecorderResource) Name() string { return "recorder" }

func (RecorderResource) MethodID(name string) (int, bool) {
	return indexOfFold(recorderMethodNames, name)
}

func (RecorderResource) MethodName(id int) (string, bool) {
	return nameAt(recorderMethodNames, id)
}

func (RecorderResource) EventID(name string) (int, bool) {
	return indexOfFold(recorderEventNames, name)
}

func (RecorderResource) EventName(id int) (string, bool) {
	return nameAt(recorderEventNames, id)
}

func (RecorderResource) NewHeader() ResourceHeader {
	return &RecorderHeader{}
}

// RecorderHeader is the recorder resource-header variant (§2.1, §9.1).
type RecorderHeader struct {
	HasSensitivityLevel     bool
	SensitivityLevel        string
	HasNoInputTimeout       bool
	NoInputTimeout          string
	HasCaptureOnSpeech      bool
	CaptureOnSpeech         string
	HasVerBufferUtterance   bool
	VerBufferUtterance      string
}

func (*RecorderHeader) ResourceName() string { return "recorder" }

func (h *RecorderHeader) SetField(name, value string) bool {
	switch strings.ToLower(name) {
	case "sensitivity-level":
		h.HasSensitivityLevel, h.SensitivityLevel = true, value
	case "no-input-timeout":
		h.HasNoInputTimeout, h.NoInputTimeout = true, value
	case "capture-on-speech":
		h.HasCaptureOnSpeech, h.CaptureOnSpeech = true, value
	case "ver-buffer-utterance":
		h.HasVerBufferUtterance, h.VerBufferUtterance = true, value
	default:
		return false
	}
	return true
}

func (h *RecorderHeader) AppendFields(out HeaderFields) HeaderFields {
	if h.HasSensitivityLevel {
		out = append(out, HeaderField{"Sensitivity-Level", h.SensitivityLevel})
	}
	if h.HasNoInputTimeout {
		out = append(out, HeaderField{"No-Input-Timeout", h.NoInputTimeout})
	}
	if h.HasCaptureOnSpeech {
		out = append(out, HeaderField{"Capture-On-Speech", h.CaptureOnSpeech})
	}
	if h.HasVerBufferUtterance {
		out = append(out, HeaderField{"Ver-Buffer-Utterance", h.VerBufferUtterance})
	}
	return out
}
