// Package caller captures call-site metadata for diagnostic logging.
//
// Go has no compiler-injected caller attributes, so the member name, file
// and line are recovered from the runtime call stack. The argument
// expression cannot be recovered at runtime and must be supplied by the
// caller when it matters.
//
//	info := caller.Capture(0)
//	log.Info("called", logger.Fields("member", info.Member, "line", info.Line))
package caller
