// Package testsupport provides helpers shared by package tests: temp-dir
// backed configurations, catalog fixtures, and small file writers.
package testsupport
