// Package types defines the shared vocabulary of the regkit module: hive
// and architecture identifiers, the closed REG_* value-type enumeration,
// the Value record produced by output parsing, and the typed error
// taxonomy every layer reports through.
package types
