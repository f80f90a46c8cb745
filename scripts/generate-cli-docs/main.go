// Package main generates a single markdown reference of the ecs-state-check CLI commands.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ecs-state-check/ecs-state-check/cmd/cli/cmd"
	"github.com/ecs-state-check/ecs-state-check/internal/constants"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func main() {
	var outFile string
	flag.StringVar(&outFile, "out", "./docs/CLI.md", "output file for generated markdown")
	flag.Parse()

	if outFile == "" {
		log.Fatal("error: output file is required")
	}

	if err := writeFile(outFile); err != nil {
		log.Fatalf("error: %s", err)
	}
}

func writeFile(outFile string) error {
	if err := os.MkdirAll(filepath.Dir(outFile), 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	file, err := os.Create(filepath.Clean(outFile))
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("warning: error closing file: %v", closeErr)
		}
	}()

	if err = generate(file, cmd.RootCmd()); err != nil {
		return err
	}

	log.Printf("generated CLI documentation in %s", outFile)
	return nil
}

// generate writes the documentation of root and all its available subcommands to w.
func generate(w io.Writer, root *cobra.Command) error {
	root.DisableAutoGenTag = true

	if _, err := fmt.Fprintf(w, "# %s CLI\n\n", constants.ProjectName); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, c := range commandsInOrder(root) {
		c.DisableAutoGenTag = true
		if err := doc.GenMarkdownCustom(c, w, anchorLink); err != nil {
			return fmt.Errorf("generating markdown for %s: %w", c.CommandPath(), err)
		}
	}

	return nil
}

// commandsInOrder returns root followed by its available descendants, sorted by name at each level.
func commandsInOrder(root *cobra.Command) []*cobra.Command {
	if !root.IsAvailableCommand() && root.HasParent() {
		return nil
	}

	result := []*cobra.Command{root}

	children := root.Commands()
	sort.Slice(children, func(i, j int) bool {
		return children[i].Name() < children[j].Name()
	})
	for _, child := range children {
		if !child.IsAvailableCommand() || child.IsAdditionalHelpTopicCommand() {
			continue
		}
		result = append(result, commandsInOrder(child)...)
	}

	return result
}

// anchorLink turns cobra's per-file links ("ecs-state-check_replay.md") into in-page anchors.
func anchorLink(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return "#" + strings.ReplaceAll(base, "_", "-")
}
