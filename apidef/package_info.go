// Package apidef contains the wire types of the Toolshop API and the exact strings its
// contract promises: header values and validation messages.
package apidef
