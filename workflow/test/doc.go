// Package test provides reporters, steps, and factories for testing workflows.
package test
