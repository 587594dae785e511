package mrcp

import "strings"

// Speech recognizer method ids (§2.1).
const (
	RecogMethodSetParams = iota
	RecogMethodGetParams
	RecogMethodDefineGrammar
	RecogMethodRecognize
	RecogMethodInterpret
	RecogMethodGetResult
	RecogMethodStartInputTimers
	RecogMethodStop
)

// Speech recognizer event ids.
const (
	RecogEventStartOfInput = iota
	RecogEventRecognitionComplete
)

var recogMethodNames = []string{
	RecogMethodSetParams:        "SET-PARAMS",
	RecogMethodGetParams:        "GET-PARAMS",
	RecogMethodDefineGrammar:    "DEFINE-GRAMMAR",
	RecogMethodRecognize:        "RECOGNIZE",
	RecogMethodInterpret:        "INTERPRET",
	RecogMethodGetResult:        "GET-RESULT",
	RecogMethodStartInputTimers: "START-INPUT-TIMERS",
	RecogMethodStop:             "STOP",
}

var recogEventNames = []string{
	RecogEventStartOfInput:        "START-OF-INPUT",
	RecogEventRecognitionComplete: "RECOGNITION-COMPLETE",
}

// SpeechRecogResource implements Resource for "speechrecog" (§2.1).
type SpeechRecogResource struct{}

func (SpeechRecogResource) Name() string { return "speechrecog" }

func (SpeechRecogResource) MethodID(name string) (int, bool) {
	return indexOfFold(recogMethodNames, name)
}

func (SpeechRecogResource) MethodName(id int) (string, bool) {
	return nameAt(recogMethodNames, id)
}

func (SpeechRecogResource) EventID(name string) (int, bool) {
	return indexOfFold(recogEventNames, name)
}

func (SpeechRecogResource) EventName(id int) (string, bool) {
	return nameAt(recogEventNames, id)
}

func (SpeechRecogResource) NewHeader() ResourceHeader {
	return &SpeechRecogHeader{}
}

// SpeechRecogHeader is the speechrecog resource-header variant (§2.1, §9.1).
type SpeechRecogHeader struct {
	HasConfidenceThreshold bool
	ConfidenceThreshold    string
	HasSensitivityLevel    bool
	SensitivityLevel       string
	HasSpeedVsAccuracy     bool
	SpeedVsAccuracy        string
	HasNBestListLength     bool
	NBestListLength        string
	HasNoInputTimeout      bool
	NoInputTimeout         string
	HasRecognitionTimeout  bool
	RecognitionTimeout     string
	HasInputType           bool
	InputType              string
}

func (*SpeechRecogHeader) ResourceName() string { return "speechrecog" }

func (h *SpeechRecogHeader) SetField(name, value string) bool {
	switch strings.ToLower(name) {
	case "confidence-threshold":
		h.HasConfidenceThreshold, h.ConfidenceThreshold = true, value
	case "sensitivity-level":
		h.HasSensitivityLevel, h.SensitivityLevel = true, value
	case "speed-vs-accuracy":
		h.HasSpeedVsAccuracy, h.SpeedVsAccuracy = true, value
	case "n-best-list-length":
		h.HasNBestListLength, h.NBestListLength = true, value
	case "no-input-timeout":
		h.HasNoInputTimeout, h.NoInputTimeout = true, value
	case "recognition-timeout":
		h.HasRecognitionTimeout, h.RecognitionTimeout = true, value
	case "input-type":
		h.HasInputType, h.InputType = true, value
	default:
		return false
	}
	return true
}

func (h *SpeechRecogHeader) AppendFields(out HeaderFields) HeaderFields {
	if h.HasConfidenceThreshold {
		out = append(out, HeaderField{"Confidence-Threshold", h.ConfidenceThreshold})
	}
	if h.HasSensitivityLevel {
		out = append(out, HeaderField{"Sensitivity-Level", h.SensitivityLevel})
	}
	if h.HasSpeedVsAccuracy {
		out = append(out, HeaderField{"Speed-Vs-Accuracy", h.SpeedVsAccuracy})
	}
	if h.HasNBestListLength {
		out = append(out, HeaderField{"N-Best-List-Length", h.NBestListLength})
	}
	if h.HasNoInputTimeout {
		out = append(out, HeaderField{"No-Input-Timeout", h.NoInputTimeout})
	}
	if h.HasRecognitionTimeout {
		out = append(out, HeaderField{"Recognition-Timeout", h.RecognitionTimeout})
	}
	if h.HasInputType {
		out = append(out, HeaderField{"Input-Type", h.InputType})
	}
	return out
}
