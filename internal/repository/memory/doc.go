// Package memory provides in-process implementations of the repository
// ports. They enforce the same uniqueness rules as the postgres schema and
// back STORE_DRIVER=memory as well as the test suites.
package memory
