package tubing

// ProtocolError reports misuse of the pipeline API: a malformed chain shape
// or an operation on a queue that its state forbids. It is always a
// programming error in the caller, never a runtime stage failure.
type ProtocolError struct {
	Op     string
	Reason string
}

func (e *ProtocolError) Error() string {
	return "tubing: protocol violation in " + e.Op + ": " + e.Reason
}
