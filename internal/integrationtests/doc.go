// Package integration_tests holds end-to-end tests that drive the App
// through definition files written into temporary directories.
package integration_tests
