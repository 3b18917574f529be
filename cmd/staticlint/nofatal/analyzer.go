// Package nofatal - анализатор вызовов, завершающих процесс вне пакета main.
package nofatal

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const doc = `nofatal reports calls that terminate the process outside package main

Library code must return errors to the caller. os.Exit, the Fatal and Panic
helpers of the log package and of logrus are allowed only in package main.`

var Analyzer = &analysis.Analyzer{
	Name:     "nofatal",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// forbidden - пакет -> имена функций и методов.
var forbidden = map[string]map[string]bool{
	"os": {"Exit": true},
	"log": {
		"Fatal": true, "Fatalf": true, "Fatalln": true,
		"Panic": true, "Panicf": true, "Panicln": true,
	},
	"github.com/sirupsen/logrus": {
		"Fatal": true, "Fatalf": true, "Fatalln": true,
		"Panic": true, "Panicf": true, "Panicln": true,
		"Exit": true,
	},
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() == "main" {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	insp.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
		if !ok || fn.Pkg() == nil {
			return
		}
		if names, ok := forbidden[fn.Pkg().Path()]; ok && names[fn.Name()] {
			pass.Reportf(call.Pos(), "call to %s.%s outside package main", fn.Pkg().Name(), fn.Name())
		}
	})

	return nil, nil
}
