package mrcp

import "strings"

// HeaderField is a single "Name: Value" pair, order preserved the way
// sip.HeaderParams preserves URI/header parameter order (sip/header_params.go).
type HeaderField struct {
	Name  string
	Value string
}

// HeaderFields is an ordered collection of header fields.
type HeaderFields []HeaderField

func (hf HeaderFields) index(name string) int {
	for i, f := range hf {
		if strings.EqualFold(f.Name, name) {
			return i
		}
	}
	return -1
}

// Get returns the value of the first field with the given name.
func (hf HeaderFields) Get(name string) (string, bool) {
	if i := hf.index(name); i >= 0 {
		return hf[i].Value, true
	}
	return "", false
}

// Add appends or overwrites a field by name, preserving first-seen order.
func (hf *HeaderFields) Add(name, value string) {
	if i := hf.index(name); i >= 0 {
		(*hf)[i].Value = value
		return
	}
	*hf = append(*hf, HeaderField{Name: name, Value: value})
}

// GenericHeader is the protocol-version-independent subset of header fields
// (§3.1). VendorSpecific preserves any Vendor-Specific-Parameters entries
// verbatim; everything else the codec never interprets is dropped at parse
// time (out of scope per §1 — resource-specific semantics belong to
// ResourceHeader, and headers this module does not model at all are not
// round-tripped).
type GenericHeader struct {
	HasContentType     bool
	ContentType        string
	HasContentID       bool
	ContentID          string
	HasContentBase     bool
	ContentBase        string
	HasContentLocation bool
	ContentLocation    string
	HasContentEncoding bool
	ContentEncoding    string
	HasCacheControl    bool
	CacheControl       string
	HasLoggingTag      bool
	LoggingTag         string
	HasContentLength   bool
	ContentLength      int
	VendorSpecific     HeaderFields
}

// ResourceHeader is the tagged-union member attached to a Message once its
// resource has been resolved (§4.3, design note in spec.md §9). Each
// concrete resource (speechsynth, speechrecog, recorder, ...) implements
// this with its own named fields instead of a generic map, per the "tagged
// variants, not inheritance" guidance.
type ResourceHeader interface {
	// ResourceName is the owning resource's name, e.g. "speechsynth".
	ResourceName() string
	// SetField parses one resource-header line into the concrete struct.
	// It returns false if name is not a header known to this resource.
	SetField(name, value string) bool
	// AppendFields emits every field that has been set, in the resource's
	// canonical order, for the header-generate step.
	AppendFields(out HeaderFields) HeaderFields
}
