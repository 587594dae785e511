package mrcp

// Resource describes one media-resource type: the set of legal method and
// event names, their numeric ids, and the resource-header schema attached to
// a Message once resolved (§2.1, §4.3, §GLOSSARY "Resource").
type Resource interface {
	Name() string
	MethodID(name string) (int, bool)
	MethodName(id int) (string, bool)
	EventID(name string) (int, bool)
	EventName(id int) (string, bool)
	NewHeader() ResourceHeader
}

// ResourceFactory is the §6.3 collaborator: a lookup table from resource
// name to Resource, implementing resourcify_by_name/resourcify_by_id. It is
// a pure lookup — it never touches a TextStream.
type ResourceFactory struct {
	byName map[string]Resource
}

// NewResourceFactory returns a factory pre-registered with the given
// resources; additional resources can be registered at runtime with
// Register, since §2.1's catalogue is a set of defaults, not a closed set.
func NewResourceFactory(resources ...Resource) *ResourceFactory {
	f := &ResourceFactory{byName: make(map[string]Resource, len(resources))}
	for _, r := range resources {
		f.Register(r)
	}
	return f
}

// Register adds or replaces a resource by name.
func (f *ResourceFactory) Register(r Resource) {
	f.byName[r.Name()] = r
}

// Lookup returns the resource registered under name, if any.
func (f *ResourceFactory) Lookup(name string) (Resource, bool) {
	r, ok := f.byName[name]
	return r, ok
}

// DefaultResourceFactory returns a factory pre-registered with the §2.1
// catalogue (speechsynth, speechrecog, recorder). Applications with their own
// resource set construct a ResourceFactory directly instead.
func DefaultResourceFactory() *ResourceFactory {
	return NewResourceFactory(
		SpeechSynthResource{},
		SpeechRecogResource{},
		RecorderResource{},
	)
}

// resourcifyByName resolves message.Channel.ResourceName to a Resource,
// translates the textual method/event name already parsed into StartLine
// into a numeric id, and attaches a fresh resource-header to message.Header.
// It fails if the resource name is unknown or the method/event name is not
// valid for that resource (§4.3).
func (f *ResourceFactory) resourcifyByName(msg *Message) error {
	res, ok := f.byName[msg.Channel.ResourceName]
	if !ok {
		return ErrUnknownResource
	}
	switch msg.Start.Kind {
	case StartLineRequest:
		id, ok := res.MethodID(msg.Start.MethodName)
		if !ok {
			return ErrUnknownMethod
		}
		msg.Start.MethodID = id
		msg.Start.HasMethodID = true
	case StartLineEvent:
		id, ok := res.EventID(msg.Start.EventName)
		if !ok {
			return ErrUnknownEvent
		}
		msg.Start.EventID = id
		msg.Start.HasEventID = true
	case StartLineResponse:
		// Responses carry no method/event name of their own to resolve.
	}
	msg.resource = res
	msg.Header.Resource = res.NewHeader()
	return nil
}

// resourcifyByID is the reverse direction: given numeric ids already present
// on the message (set by the application before generating), it attaches the
// name strings and a resource-header ready to be filled in by the caller
// before Generator.Run (§4.3).
func (f *ResourceFactory) resourcifyByID(msg *Message) error {
	res, ok := f.byName[msg.Channel.ResourceName]
	if !ok {
		return ErrUnknownResource
	}
	switch msg.Start.Kind {
	case StartLineRequest:
		if !msg.Start.HasMethodID {
			return ErrUnknownMethod
		}
		name, ok := res.MethodName(msg.Start.MethodID)
		if !ok {
			return ErrUnknownMethod
		}
		msg.Start.MethodName = name
	case StartLineEvent:
		if !msg.Start.HasEventID {
			return ErrUnknownEvent
		}
		name, ok := res.EventName(msg.Start.EventID)
		if !ok {
			return ErrUnknownEvent
		}
		msg.Start.EventName = name
	case StartLineResponse:
	}
	msg.resource = res
	if msg.Header.Resource == nil {
		msg.Header.Resource = res.NewHeader()
	}
	return nil
}
