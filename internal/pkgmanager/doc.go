// Package pkgmanager wraps the external Node.js package manager behind a
// narrow interface. The npm implementation shells out with inherited
// standard streams; the mock records calls for tests.
package pkgmanager
