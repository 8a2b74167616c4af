//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// The tool directive in go.mod keeps them in the module graph.

import (
	_ "github.com/pressly/goose/v3/cmd/goose"
)
