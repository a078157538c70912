// Package polylog provides a ubiquitous logging interface which can be backed
// by any of the supported logging libraries. Loggers are associated with and
// retrieved from a context.Context so that they travel with the work they
// describe. The only implementation currently shipped is polyzero (zerolog).
package polylog
