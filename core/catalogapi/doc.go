// Package catalogapi provides the HTTP client for the external BrickLink
// catalog service consumed by the validator and the minifig mapper.
//
// The service is modeled at its interface boundary only: an existence
// check for part IDs and a minifig ID lookup. Transient failures
// (timeouts, malformed payloads, non-2xx answers other than 404) surface
// as errors that callers convert to "unresolved" outcomes; they are never
// propagated as user-facing failures.
package catalogapi
