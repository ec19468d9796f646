// Package sanitizer normalizes free-form customer input before validation
// and storage.
//
// All functions are idempotent. Invalid input is returned in a form the
// validator will reject rather than silently dropped.
package sanitizer
