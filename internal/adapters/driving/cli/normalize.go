package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gridpad-labs/gridpad-cli/internal/render"
)

var normalizeFormat string

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Normalize tabular text without opening the editor",
	Long: `Normalize tabular text from a file or stdin and print the result.

Formats:
  table   aligned plain-text grid (default on a terminal)
  json    compact normalized JSON (default when piped)
  pretty  pretty-printed normalized JSON
  html    HTML table with a header band`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeFormat, "format", "f", "",
		"output format: table, json, pretty, or html")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	if normalizerService == nil {
		return errors.New("normalizer service not configured")
	}

	input, err := readNormalizeInput(cmd, args)
	if err != nil {
		return err
	}

	doc, canonical, err := normalizerService.NormalizeInput(input)
	if err != nil {
		return fmt.Errorf("normalizing input: %w", err)
	}

	format := normalizeFormat
	if format == "" {
		format = defaultFormat()
	}

	switch format {
	case "table":
		if doc == nil {
			cmd.Println("No table data.")
			return nil
		}
		cmd.Print(render.Text(doc.Rows))
		cmd.Println(render.Footer(doc))
	case "json":
		cmd.Println(normalizerService.Serialize(doc))
	case "pretty":
		cmd.Println(canonical)
	case "html":
		cmd.Print(render.HTML(doc))
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	return nil
}

// readNormalizeInput reads the text to normalize from the file argument
// or from stdin when no argument is given.
func readNormalizeInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// defaultFormat picks the output format based on where stdout goes.
func defaultFormat() string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return "table"
	}
	return "json"
}
