//go:build !debug

package dbglog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dbglog"
)

// Without the debug tag a fresh logger must be a no-op until it is
// switched on explicitly.
func TestReleaseBuildStartsDisabled(t *testing.T) {
	var lines []string
	logger := dbglog.New(dbglog.SeverityVerbose)
	logger.SetSink(func(line string) {
		lines = append(lines, line)
	})

	assert.False(t, logger.Enabled(dbglog.SeveritySevere))

	logger.Severe("meltdown")
	logger.Error("boom")
	logger.Warning("careful")
	logger.Info("hello")
	logger.Debug("details")
	logger.Verbose("noise")
	assert.Empty(t, lines)

	logger.SetEnabled(true)
	logger.Info("now visible")
	assert.Len(t, lines, 1)
}
