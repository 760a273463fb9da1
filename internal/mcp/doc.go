// Package mcp implements the kosho Model Context Protocol server.
//
// The server advertises exactly one tool, search, which performs
// keyword matching over the fixed fictional book catalog. Prompts and
// resources are declared as capabilities but the inventories are empty:
// listing them returns empty collections, reading a resource fails with
// a resource-not-found error carrying the requested URI, and fetching a
// prompt fails with an invalid-parameters error. The SDK answers those
// requests from the empty feature sets; this package only declares the
// capabilities, registers the tool, and handles its invocations.
//
// Tool handlers follow the net/http.Handler style: the input schema is
// inferred from a struct with jsonschema-go, the SDK validates and
// decodes arguments (malformed input becomes a protocol-level
// invalid-parameters error, never a crash), and the handler builds the
// result inline.
//
// Every invocation is a bounded, synchronous computation over the
// in-memory catalog, so handlers need no cancellation or locking beyond
// the catalog's initialize-once guarantee.
package mcp
