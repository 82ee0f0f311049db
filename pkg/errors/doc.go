// Package errors provides structured error types shared by the collector,
// CLI and daemon.
//
// A StructuredError carries a machine-readable ErrorCode, a message, the
// wrapped cause and optional context. The daemon maps codes to HTTP status
// codes; the CLI prints the rendered message.
//
// Usage:
//
//	if err := ctx.Err(); err != nil {
//	    return nil, errors.WrapWithContext(errors.ErrCodeTimeout,
//	        "facts collection interrupted", err,
//	        map[string]any{"section": "resource-groups"})
//	}
//
// Use CodeOf to recover the code from an arbitrarily wrapped error:
//
//	switch errors.CodeOf(err) {
//	case errors.ErrCodeTimeout:
//	    // retry later
//	}
package errors
