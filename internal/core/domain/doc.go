// Package domain holds the core types of the unifill catalog: the Entry
// value object, query terms, the backend schema contract, configuration,
// and the dataset line format.
//
// The domain package has no dependencies on adapters or services. Entries
// are immutable after construction; nothing here performs I/O.
package domain
