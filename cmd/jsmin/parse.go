package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsmin/internal/driver"
	"jsmin/internal/format"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.js>",
	Short: "Parse a JavaScript file and print it back",
	Long: `Parse checks a file for syntax errors and pretty-prints the parsed tree.
No optimization is applied, so the output shows exactly what the parser saw.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().Bool("compact", false, "print without whitespace instead of pretty output")
	parseCmd.Flags().Int("indent", 2, "indent width for pretty output")
}

func runParse(cmd *cobra.Command, args []string) error {
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}
	compact, err := cmd.Flags().GetBool("compact")
	if err != nil {
		return fmt.Errorf("failed to get compact flag: %w", err)
	}
	indent, err := cmd.Flags().GetInt("indent")
	if err != nil {
		return fmt.Errorf("failed to get indent flag: %w", err)
	}
	if indent < 1 || indent > 16 {
		return fmt.Errorf("--indent must be between 1 and 16, got %d", indent)
	}

	res, err := driver.Parse(args[0], g.maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if printDiagnostics(cmd.ErrOrStderr(), g, res.Bag, res.FileSet) {
		return errReported
	}

	text, err := format.FormatFile(res.Builder, res.FileID, format.Options{Pretty: !compact, IndentWidth: indent})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if _, err := out.Write(text); err != nil {
		return err
	}
	if len(text) == 0 || text[len(text)-1] != '\n' {
		fmt.Fprintln(out)
	}
	return nil
}
