package mrcp

import "errors"

// Sentinel errors for the codec's failure causes. The resource factory's
// resolve functions return ErrUnknownResource, ErrUnknownMethod and
// ErrUnknownEvent; the tokenizers (§6.3) report failure as a bool, and the
// other sentinels are not returned by any function in this package. A Parser
// or Generator never surfaces these across its own Run boundary: they are
// folded into one of the three Result values (§7).
var (
	ErrStartLineMalformed = errors.New("mrcp: start-line malformed")
	ErrChannelIDMalformed = errors.New("mrcp: channel-id malformed")
	ErrHeaderMalformed    = errors.New("mrcp: header field malformed")
	ErrUnknownResource    = errors.New("mrcp: unknown resource")
	ErrUnknownMethod      = errors.New("mrcp: method not valid for resource")
	ErrUnknownEvent       = errors.New("mrcp: event not valid for resource")
	ErrValidationFailed   = errors.New("mrcp: message validation failed")
	ErrNoMessage          = errors.New("mrcp: generator has no message set")
	ErrLineTooLong        = errors.New("mrcp: line exceeds stream capacity")
)
