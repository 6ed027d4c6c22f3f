package driver

import "jsmin/internal/compress"

type AnalyzeResult struct {
	*ParseResult
	Params []compress.ParamReport
}

// Analyze parses path and explains every parameter verdict without
// rewriting anything. Params is empty when the file has syntax errors.
func Analyze(path string, opts compress.Options, maxDiagnostics int) (*AnalyzeResult, error) {
	pr, err := Parse(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	res := &AnalyzeResult{ParseResult: pr}
	if !pr.Bag.HasErrors() {
		res.Params = compress.Explain(pr.Builder, pr.FileID, opts)
	}
	return res, nil
}
