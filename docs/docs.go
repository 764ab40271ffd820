//go:build docs

package main

import (
	"fmt"
	"os"

	log "github.com/rs/zerolog"
	"github.com/spf13/cobra/doc"

	"github.com/zoneprof/zoneprof/pkg/cmd"
	"github.com/zoneprof/zoneprof/pkg/cmd/options"
)

const docsDir = "docs"

// Generates the markdown CLI reference under docs/.
func main() {
	root := cmd.NewCommand(
		options.NewCommonOptions(
			options.WithLogger(log.New(os.Stderr).Level(log.InfoLevel)),
		),
	)

	if err := doc.GenMarkdownTree(root, docsDir); err != nil {
		fmt.Println("failed to generate the CLI reference:", err)
		os.Exit(1)
	}
}
