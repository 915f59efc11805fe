// Package formatting turns orchestrator responses into operator output.
//
// Responses are loosely typed: either a single record (Scalar) or a list of
// records (Collection) whose field names are never declared up front.
// DecodePayload reads raw JSON into a Payload without losing field order,
// and Renderer writes a Payload either as a table or as indented JSON.
//
// # Table rendering
//
// The header of a Collection table is taken from the first record only.
// Every record contributes one row of its own values in its own field order,
// so records with a different field set or field order than the first one
// produce rows that do not line up with the header. Callers that need
// aligned output must use JSON mode.
package formatting
