// Package apitest contains a test runner framework that is similar to Go's testing package,
// but is run as regular Go application code rather than Go tests. It adds scoped resource
// release, capability-based skipping, and console and JUnit result reporting.
package apitest
