package export

// ExportError wraps any failure of the snapshot pipeline. It never implies a
// change to chart state or history.
type ExportError struct {
	Op  string
	Err error
}

func (e ExportError) Error() string {
	return "snapshot " + e.Op + " failed: " + e.Err.Error()
}

func (e ExportError) Unwrap() error { return e.Err }
