//go:build debug

package dbglog

// debugBuild enables output by default when built with the debug tag.
const debugBuild = true
