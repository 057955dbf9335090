package output

import "sync"

// Default printer, created lazily so terminal probing happens once.
var (
	defaultPrinter *Printer
	defaultOnce    sync.Once
)

// Default returns the process-wide printer, constructing it on first
// use. Repeated calls are guarded no-ops.
func Default() *Printer {
	defaultOnce.Do(func() {
		defaultPrinter = NewPrinter()
	})
	return defaultPrinter
}

// Convenience functions mirroring the Printer level methods on the
// default printer.

// Say renders one message on the default printer.
func Say(msg string, opts Options) error {
	return Default().Say(msg, opts)
}

// Info emits msg at the info level on the default printer.
func Info(msg string) error {
	return Default().Info(msg)
}

// Success emits msg at the success level on the default printer.
func Success(msg string) error {
	return Default().Success(msg)
}

// Warning emits msg at the warning level on the default printer.
func Warning(msg string) error {
	return Default().Warning(msg)
}

// Error emits msg at the error level on the default printer.
func Error(msg string) error {
	return Default().Error(msg)
}

// Internal emits msg at the internal level on the default printer.
func Internal(msg string) error {
	return Default().Internal(msg)
}

// Plain emits msg without level semantics on the default printer.
func Plain(msg string) error {
	return Default().Plain(msg)
}
