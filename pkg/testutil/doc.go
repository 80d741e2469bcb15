// Package testutil provides utilities for testing cheatnav components.
//
// Key components:
//   - NewMemoryFS: afero-backed in-memory filesystem with seeding helpers
//   - MockFS: testify mock of filesystem.FS for asserting which paths a
//     component consults
//   - Environment: isolated XDG and HOME directories with the CHEATNAV_*
//     variables cleared
//
// Usage guidelines:
//   - Prefer NewMemoryFS; use Environment only when code reads the real
//     process environment or the OS filesystem
//   - All test data should be defined inline, not in external files
package testutil
