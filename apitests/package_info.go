// Package apitests contains the contract scenarios for the Toolshop API. Each scenario
// prepares its inputs, makes one to three calls, and checks the responses in a single soft
// assertion block so that every violated property is reported together.
//
// The entry point is RunAPITestSuite.
package apitests
