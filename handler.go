package yamlite

// Handler receives the events produced by a parse, in document order.
// It is implemented by the caller and is the only way results leave
// the parser. Every callback is invoked inline and must return before
// scanning resumes; the parser never retains the handler after Parse
// returns.
//
// Key and Scalar report whether parsing should continue. Returning
// false aborts the scan immediately: no further events are delivered,
// including EndDocument, and Parse returns ErrStopped. Events already
// delivered remain valid and final.
type Handler interface {
	// StartDocument and EndDocument bracket a successful parse and
	// are called exactly once each.
	StartDocument()
	EndDocument()

	// Start and end events for nesting contexts are strictly
	// balanced: one matched pair per open sequence or mapping.
	StartSequence()
	EndSequence()
	StartMapping()
	EndMapping()

	// Key is called once per mapping key.
	Key(text string) bool

	// Scalar is called once per value, including the synthesized
	// "null" for a key with no explicit value.
	Scalar(text string) bool

	// Error is called at most once, immediately before a failed
	// parse returns. Line is 1-based; column counts bytes from the
	// start of the line.
	Error(msg string, line, col int)
}

// NopHandler implements Handler with no-op methods. Embed it to
// implement only the callbacks of interest.
type NopHandler struct{}

func (NopHandler) StartDocument() {}

func (NopHandler) EndDocument() {}

func (NopHandler) StartSequence() {}

func (NopHandler) EndSequence() {}

func (NopHandler) StartMapping() {}

func (NopHandler) EndMapping() {}

func (NopHandler) Key(string) bool { return true }

func (NopHandler) Scalar(string) bool { return true }

func (NopHandler) Error(string, int, int) {}
