package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mrbrightsides/mermaind/internal/page"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the page as static HTML files",
	Long:  `Renders the page to index.html and the bare embed to embed.html so they can be hosted by any static file server.`,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().String("output", "site", "output directory")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	outputDir, _ := cmd.Flags().GetString("output")

	renderer, err := page.New(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outputDir, err)
	}

	index, _ := renderer.Bytes()
	if err := os.WriteFile(filepath.Join(outputDir, "index.html"), index, 0o644); err != nil {
		return fmt.Errorf("writing index.html: %w", err)
	}

	embedPath := filepath.Join(outputDir, "embed.html")
	f, err := os.Create(embedPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", embedPath, err)
	}
	defer f.Close()
	if err := renderer.Frame().RenderDocument(f, cfg.Page.Title); err != nil {
		return fmt.Errorf("writing embed.html: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", embedPath, err)
	}

	fmt.Printf("Static page written to %s\n", outputDir)
	return nil
}
