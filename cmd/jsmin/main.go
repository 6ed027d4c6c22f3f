package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jsmin/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "jsmin",
	Short: "JavaScript minifier with parameter value inlining",
	Long: `jsmin minifies JavaScript. Besides printing compact code it inlines
parameters that receive the same constant at every call site.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		mode, err := cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			return err
		}
		switch mode {
		case "auto", "on", "off":
		default:
			return fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
		}
		color.NoColor = !colorEnabled(mode, os.Stdout)

		stopProfiles, err := setupProfiling(cmd)
		if err != nil {
			return err
		}
		profileCleanup = stopProfiles

		cleanup, err := setupTracing(cmd)
		if err != nil {
			return err
		}
		traceCleanup = cleanup
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		runCleanup()
	},
}

var profileCleanup func()

// runCleanup flushes tracing first so the profiles include it.
func runCleanup() {
	runTraceCleanup()
	if profileCleanup != nil {
		profileCleanup()
		profileCleanup = nil
	}
}

// errReported marks a failure whose details were already printed.
var errReported = errors.New("errors reported")

func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(minifyCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	addTraceFlags(pf)
	addProfileFlags(pf)

	err := rootCmd.Execute()
	// PersistentPostRun не вызывается, если RunE вернул ошибку
	runCleanup()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

func colorEnabled(mode string, f *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}
