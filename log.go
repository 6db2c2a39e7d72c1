package stopquote

import "github.com/rs/zerolog"

// package logger, discards everything until SetLogger is called.
var logger = zerolog.Nop()

// SetLogger installs the logger used for progress and per-symbol traces.
func SetLogger(l zerolog.Logger) { logger = l }
