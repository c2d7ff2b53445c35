package redaction

// Diagnostics is the sink for loader diagnostics. The engine never writes to
// process-wide logging directly; callers inject a sink so warnings (loose
// permissions, deprecated formats) can be asserted on in tests.
type Diagnostics interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// nopDiagnostics discards everything. Used when no sink is injected.
type nopDiagnostics struct{}

func (nopDiagnostics) Debugf(string, ...interface{}) {}
func (nopDiagnostics) Infof(string, ...interface{})  {}
func (nopDiagnostics) Warnf(string, ...interface{})  {}
