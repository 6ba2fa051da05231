// Package domain defines the core business entities for wikiwords.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FrequencyTable: word occurrence counts for one article section
//   - Exclusions: words the user asked to leave out of a report
//   - Report: the ranked outcome of one run
//   - AppSettings: article, report and fetch configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
