// Package core holds the numeric helpers and processing configuration
// shared by the filter, equalizer and measurement packages.
package core
