package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var inlineSeeds = []string{
	"",
	"function f(a){return a}f(1);f(1);",
	"function f(a,b){return a+b}f(1,2);f(1,3);",
	"function f(a){return a}f(...xs);",
	"function f(a=1,b){return b}f(void 0,2);",
	"'use strict';function f(a){'use strict';return a}f(\"x\");",
	"var g=function h(a){return a};h(1);",
	"function f(a){eval('a');return a}f(1);",
	"function f(a){return arguments[0]}f(1);",
	"x\n++y",
	"for(var i=0,n=a.length;i<n;i++){if(a[i]in o)continue}",
	"try{f()}catch(e){}finally{g()}",
	"a?.b?.(c)??d",
	"function f(){return\n1}",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.js файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error { //nolint:errcheck
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".js" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(append([]byte(nil), input[:maxLen]...), "..."...)
}
