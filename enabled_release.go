//go:build !debug

package dbglog

// debugBuild disables output by default in release builds. Loggers can
// still be switched on at runtime with SetEnabled.
const debugBuild = false
