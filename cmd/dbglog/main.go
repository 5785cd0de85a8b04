/*
Copyright (c) 2026 The dbglog Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"dbglog"
	"dbglog/internal/config"
)

const DefaultConfigPath = "/etc/dbglog.yaml"

func main() {
	configPath := flag.String("config", DefaultConfigPath, "path to the YAML configuration file")
	levelFlag := flag.String("level", "info", "severity to log messages at (severe|error|warning|info|debug|verbose)")
	tagFlag := flag.String("tag", "", "tag included in every line (overrides the config file)")
	flag.Parse()

	// 1. Load .env so DBGLOG_* overrides below can come from a file.
	godotenv.Load()

	// 2. Load Configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		// A missing default config is fine; an explicit one is not.
		if *configPath != DefaultConfigPath || !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "CRITICAL: Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}
	config.ApplyEnv(&cfg)
	if *tagFlag != "" {
		cfg.LogTag = *tagFlag
	}

	logger := newLogger(cfg)
	severity := dbglog.ParseSeverity(*levelFlag)

	// 3. Log command-line arguments as a single message, or fall back
	// to reading stdin line by line.
	if args := flag.Args(); len(args) > 0 {
		logger.LogAt(severity, dbglog.CallSite{}, "%s", strings.Join(args, " "))
		return
	}
	emitLines(logger, severity, os.Stdin)
}

// newLogger builds the logger from the resolved configuration.
func newLogger(cfg config.AppConfig) *dbglog.Logger {
	logger := dbglog.New(cfg.Severity())
	logger.SetTag(cfg.LogTag)
	logger.SetCallerInfo(!cfg.OmitCaller)
	if cfg.TimeLayout != dbglog.TimeLayout {
		logger.SetFormatter(dbglog.NewFormatter(cfg.TimeLayout))
	}
	if cfg.ForceEnabled {
		logger.SetEnabled(true)
	}
	return logger
}

// emitLines logs every input line at the given severity and returns the
// number of lines read.
func emitLines(logger *dbglog.Logger, severity dbglog.Severity, in io.Reader) int {
	count := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		logger.LogAt(severity, dbglog.CallSite{}, "%s", scanner.Text())
		count++
	}
	return count
}
