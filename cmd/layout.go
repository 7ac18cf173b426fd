package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the computed iframe layout",
	Long:  `Prints the iframe geometry derived from the embed settings and, with --width, which block is visible at that viewport width.`,
	RunE:  runLayout,
}

func init() {
	layoutCmd.Flags().Int("width", 0, "viewport width in CSS pixels")
	layoutCmd.Flags().Bool("json", false, "print JSON")
	rootCmd.AddCommand(layoutCmd)
}

func runLayout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	frame := cfg.Embed.Frame()
	l := frame.Layout()
	width, _ := cmd.Flags().GetInt("width")

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		out := map[string]any{"src": frame.Src, "layout": l}
		if width > 0 {
			out["visibility"] = l.VisibilityAt(width)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Source:            %s\n", frame.Src)
	fmt.Printf("Container height:  %dpx\n", l.ContainerHeight)
	fmt.Printf("Iframe offset:     %dpx\n", l.IframeTop)
	fmt.Printf("Iframe height:     %dpx (container %+dpx)\n", l.IframeHeight, l.IframeExtraHeight)
	fmt.Printf("Component height:  %dpx\n", l.ComponentHeight)
	fmt.Printf("Mobile fallback:   width <= %dpx\n", l.Breakpoint)
	fmt.Printf("Iframe visible:    width >= %dpx\n", l.DesktopMinWidth)
	if width > 0 {
		v := l.VisibilityAt(width)
		shown := "iframe"
		if v.Mobile {
			shown = "mobile fallback"
		}
		fmt.Printf("At %dpx:           %s\n", width, shown)
	}
	return nil
}
