// Package main implements the staticlint multichecker for this repository.
//
// It combines:
//
//	the standard analyzers of golang.org/x/tools/go/analysis/passes;
//	every SA analyzer of staticcheck.io plus the S/ST/QF checks named in config.json;
//	bodyclose and errcheck;
//	go-critic;
//	osexitcheck, which reports os.Exit calls in main.main.
//
// Run it from the repository root:
//
//	go build -o bin/staticlint ./cmd/staticlint
//	bin/staticlint ./...
//
// config.json is read from the directory of the binary. Without it the default checks are used.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-critic/go-critic/checkers/analyzer"
	"github.com/kisielk/errcheck/errcheck"
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/defers"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/sigchanyzer"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/testinggoroutine"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"golang.org/x/tools/go/analysis/passes/waitgroup"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/quickfix"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

// Config is the name of the configuration file that specifies which analyzers to enable.
const Config = `config.json`

// ConfigData lists the staticcheck.io checks enabled on top of the SA class.
type ConfigData struct {
	Staticcheck []string `json:"staticcheck"`
}

// defaultChecks are used when config.json is missing.
var defaultChecks = []string{"ST1000", "ST1005", "ST1013", "ST1020", "S1008", "S1021"}

// passesChecks returns the standard analysis passes.
func passesChecks() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		assign.Analyzer,
		atomic.Analyzer,
		bools.Analyzer,
		composite.Analyzer,
		copylock.Analyzer,
		defers.Analyzer,
		errorsas.Analyzer,
		httpresponse.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		nilfunc.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		shift.Analyzer,
		sigchanyzer.Analyzer,
		stdmethods.Analyzer,
		structtag.Analyzer,
		testinggoroutine.Analyzer,
		tests.Analyzer,
		unmarshal.Analyzer,
		unreachable.Analyzer,
		unusedresult.Analyzer,
		waitgroup.Analyzer,
	}
}

// selectChecks keeps the SA analyzers and the ones named in checks.
func selectChecks(analyzers []*lint.Analyzer, checks map[string]bool) []*analysis.Analyzer {
	var selected []*analysis.Analyzer
	for _, v := range analyzers {
		if strings.HasPrefix(v.Analyzer.Name, "SA") || checks[v.Analyzer.Name] {
			selected = append(selected, v.Analyzer)
		}
	}
	return selected
}

// staticcheckIoChecks returns the staticcheck.io analyzers enabled by checks.
func staticcheckIoChecks(checks map[string]bool) []*analysis.Analyzer {
	var selected []*analysis.Analyzer
	for _, set := range [][]*lint.Analyzer{
		staticcheck.Analyzers,
		stylecheck.Analyzers,
		simple.Analyzers,
		quickfix.Analyzers,
	} {
		selected = append(selected, selectChecks(set, checks)...)
	}
	return selected
}

// publicChecks returns third-party analyzers.
func publicChecks() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		bodyclose.Analyzer,
		errcheck.Analyzer,
		analyzer.Analyzer,
	}
}

func checkSet(names []string) map[string]bool {
	checks := make(map[string]bool, len(names))
	for _, v := range names {
		checks[v] = true
	}
	return checks
}

// loadChecks reads the enabled staticcheck.io checks from path.
// A missing file yields defaultChecks.
func loadChecks(path string) (map[string]bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return checkSet(defaultChecks), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg ConfigData
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return checkSet(cfg.Staticcheck), nil
}

// allChecks assembles every analyzer the tool runs.
func allChecks(checks map[string]bool) []*analysis.Analyzer {
	var mychecks []*analysis.Analyzer
	mychecks = append(mychecks, passesChecks()...)
	mychecks = append(mychecks, staticcheckIoChecks(checks)...)
	mychecks = append(mychecks, publicChecks()...)
	mychecks = append(mychecks, OsExitCheckAnalyzer)
	return mychecks
}

func main() {
	path := Config
	if appfile, err := os.Executable(); err == nil {
		path = filepath.Join(filepath.Dir(appfile), Config)
	}

	checks, err := loadChecks(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		checks = checkSet(defaultChecks)
	}

	multichecker.Main(allChecks(checks)...)
}
