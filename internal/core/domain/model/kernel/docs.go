// Package kernel provides the value objects shared by every aggregate of the
// order bot:
//   - UUID: identifiers for entities this service owns
//   - Location: a WGS84 point with great-circle distance
//
// Both are immutable and reject their zero value through Validate.
package kernel
