// Package sipfield is a toolkit for structured SIP and SDP header fields.
//
// The field types live in the subpackages:
//
//   - [github.com/ghettovoice/sipfield/header] provides the SIP authentication headers
//     and the generic header parsing
//   - [github.com/ghettovoice/sipfield/sdp] provides the SDP connection address,
//     connection data and URI fields
//
// Field values are plain objects without I/O. Parsers are permissive on input:
// malformed values degrade to the best-effort result instead of failing, and
// every such case is reported to the logger set with [SetLogger] at debug level.
package sipfield

import (
	"log/slog"

	"github.com/ghettovoice/sipfield/internal/log"
)

// Version is the current sipfield package version.
var Version = "0.1.0"

// SetLogger sets the logger used by the field packages to report degraded input.
// Nil disables logging, which is the default.
func SetLogger(l *slog.Logger) { log.SetLogger(l) }

// DevLogger returns a human friendly debug logger writing to the standard error.
func DevLogger() *slog.Logger { return log.Dev }

// DefaultLogger returns a console debug logger writing to the standard error.
func DefaultLogger() *slog.Logger { return log.Def }
