package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// OsExitCheckAnalyzer reports direct os.Exit calls in the main function of package main.
// Exiting there skips deferred calls such as the logger flush and server shutdown.
var OsExitCheckAnalyzer = &analysis.Analyzer{
	Name:     "osexitcheck",
	Doc:      "check for os.Exit() calls in main.main",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runOsExitCheck,
}

func runOsExitCheck(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	nodeFilter := []ast.Node{(*ast.FuncDecl)(nil)}

	insp.Preorder(nodeFilter, func(n ast.Node) {
		fn := n.(*ast.FuncDecl)
		if fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
			return
		}

		ast.Inspect(fn.Body, func(node ast.Node) bool {
			call, ok := node.(*ast.CallExpr)
			if !ok {
				return true
			}
			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok || sel.Sel.Name != "Exit" {
				return true
			}
			ident, ok := sel.X.(*ast.Ident)
			if !ok {
				return true
			}
			if pkg, ok := pass.TypesInfo.Uses[ident].(*types.PkgName); ok && pkg.Imported().Path() == "os" {
				pass.Reportf(call.Pos(), "osexitcheck os.Exit cannot be called in main function of main package")
			}
			return true
		})
	})

	return nil, nil
}
