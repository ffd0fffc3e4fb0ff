// Package reqctx carries what the HTTP layer knows about a caller into the
// contact service, which logs it next to every delivery decision.
package reqctx
