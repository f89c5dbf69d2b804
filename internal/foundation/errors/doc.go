// Package errors provides the classified error primitives used across nsdoc.
//
// Every failure that leaves a package boundary is a ClassifiedError carrying a
// category (what kind of thing failed), a severity, a retry hint and a small
// context map. The CLI adapter turns the category into a process exit code.
//
// Example usage:
//
//	err := errors.WrapError(ioErr, errors.CategoryFileSystem, "write page").
//		WithContext("path", path).
//		Build()
package errors
