package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"jsmin/internal/compress"
	"jsmin/internal/driver"
	"jsmin/internal/project"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] <file.js>",
	Short: "Explain parameter inlining decisions",
	Long: `Analyze runs the call-site analysis without rewriting anything and lists,
for every parameter of every named function, the collected verdict and
whether minify would inline it.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	analyzeCmd.Flags().Bool("preserve-arg-positions", false, "only drop inlined parameters that end the parameter list")
}

type paramJSON struct {
	Function    string `json:"function"`
	Param       string `json:"param"`
	Slot        int    `json:"slot"`
	Verdict     string `json:"verdict"`
	Value       string `json:"value,omitempty"`
	Calls       int    `json:"calls"`
	CalleeCount int    `json:"callee_count"`
	Inline      bool   `json:"inline"`
	Reason      string `json:"reason"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	manifest, _, err := project.LoadManifest(".")
	if err != nil {
		return err
	}
	opts := manifest.Config.CompressOptions()
	if cmd.Flags().Changed("preserve-arg-positions") {
		opts.PreserveArgPositions, _ = cmd.Flags().GetBool("preserve-arg-positions") //nolint:errcheck
	}

	res, err := driver.Analyze(args[0], opts, g.maxDiagnostics)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	if printDiagnostics(cmd.ErrOrStderr(), g, res.Bag, res.FileSet) {
		return errReported
	}

	switch format {
	case "pretty":
		return renderParamsPretty(cmd.OutOrStdout(), res.Params)
	case "json":
		return renderParamsJSON(cmd.OutOrStdout(), res.Params)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func renderParamsPretty(out io.Writer, params []compress.ParamReport) error {
	if len(params) == 0 {
		_, err := fmt.Fprintln(out, "no named functions with parameters")
		return err
	}
	rows := make([][]string, 0, len(params))
	for _, p := range params {
		decision := "keep: " + p.Reason.String()
		if p.Reason == compress.ReasonInlined {
			decision = "inline"
		}
		value := p.Value
		if value == "" {
			value = "-"
		}
		rows = append(rows, []string{p.Func, p.Param, strconv.Itoa(p.Calls), p.Verdict, value, decision})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FUNCTION", "PARAM", "CALLS", "VERDICT", "VALUE", "DECISION").
		Rows(rows...)
	_, err := fmt.Fprintln(out, t.String())
	return err
}

func renderParamsJSON(out io.Writer, params []compress.ParamReport) error {
	payload := make([]paramJSON, len(params))
	for i, p := range params {
		payload[i] = paramJSON{
			Function:    p.Func,
			Param:       p.Param,
			Slot:        p.Slot,
			Verdict:     p.Verdict,
			Value:       p.Value,
			Calls:       p.Calls,
			CalleeCount: p.CalleeCount,
			Inline:      p.Reason == compress.ReasonInlined,
			Reason:      p.Reason.String(),
		}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
