// Package types defines the result structures returned by the command layer
// and consumed by the renderers.
package types
