package mrcp

// Version selects the wire shape of a Message's start line and whether a
// channel-identifier line follows it (§6.1).
type Version int

const (
	VersionUnknown Version = iota
	V1
	V2
)

func (v Version) String() string {
	switch v {
	case V1:
		return "MRCP/1.0"
	case V2:
		return "MRCP/2.0"
	default:
		return "MRCP/unknown"
	}
}

// ParseVersion recognizes the literal version tokens used on the wire.
func ParseVersion(s string) (Version, bool) {
	switch s {
	case "MRCP/1.0":
		return V1, true
	case "MRCP/2.0":
		return V2, true
	default:
		return VersionUnknown, false
	}
}
