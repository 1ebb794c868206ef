// Package services implements the core application services behind the
// driving ports: catalog management, ranked search, and dataset change
// watching. Services depend only on domain types and driven ports; all
// I/O strategies are injected as adapters.
package services
