// Package framework contains the low-level infrastructure of the API test harness that does
// not know anything about the Toolshop domain. The base package holds shared types such as
// Logger and Capabilities; the subpackages are:
//
// apitest: a test scope runner similar to Go's testing package, run as application code.
//
// harness: the HTTP client wrapper, login helper, and the TestHarness that owns them.
//
// softassert: the soft-assertion engine used to verify a response against many properties.
//
// helpers, opt: small generic utilities.
//
// The general model is that a scenario suite gets a harness from the runner, issues requests
// against the API under test through it, and verifies each response inside one soft-assertion
// block attached to the current test scope.
package framework
