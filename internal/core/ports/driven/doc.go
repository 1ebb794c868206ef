// Package driven defines the interfaces that core calls OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - Backend: sources catalog entries from storage (table, text, sqlite)
//   - Searcher: lazy per-query entry provider driven by an external tool
//   - QuickSearcher: minimal-parse variant of Searcher
//   - ConfigStore: application configuration persistence
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: any adapter package
package driven
