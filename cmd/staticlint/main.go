// Package staticlint - multichecker экспортера.
//
// Запускает стандартные анализаторы golang.org/x/tools, все проверки SA
// из staticcheck, QF1001, S1002, ST1000 и собственный анализатор nofatal.
// nofatal запрещает os.Exit, log.Fatal*, log.Panic* и аналоги из logrus
// вне пакета main: ошибка опроса data logger'а возвращается обработчику,
// а не завершает процесс.
//
// Запуск:
//
//	go run github.com/chestorix/dsmr-exporter/cmd/staticlint ./...
package main

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/buildtag"
	"golang.org/x/tools/go/analysis/passes/cgocall"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/sortslice"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unsafeptr"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/quickfix"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/chestorix/dsmr-exporter/cmd/staticlint/nofatal"
)

// extraChecks - анализаторы staticcheck других классов.
var extraChecks = map[string]bool{
	"QF1001": true,
	"S1002":  true,
	"ST1000": true,
}

func main() {
	var analyzers []*analysis.Analyzer

	// Стандартные анализаторы
	standardAnalyzers := []*analysis.Analyzer{
		atomic.Analyzer,
		bools.Analyzer,
		buildtag.Analyzer,
		cgocall.Analyzer,
		composite.Analyzer,
		copylock.Analyzer,
		errorsas.Analyzer,
		//	fieldalignment.Analyzer,
		httpresponse.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		nilfunc.Analyzer,
		printf.Analyzer,
		//	shadow.Analyzer,
		shift.Analyzer,
		sortslice.Analyzer,
		stdmethods.Analyzer,
		structtag.Analyzer,
		tests.Analyzer,
		unmarshal.Analyzer,
		unreachable.Analyzer,
		unsafeptr.Analyzer,
		unusedresult.Analyzer,
	}
	analyzers = append(analyzers, standardAnalyzers...)

	// Анализаторы Staticcheck класса SA
	for _, analyzer := range staticcheck.Analyzers {
		if len(analyzer.Analyzer.Name) >= 2 && analyzer.Analyzer.Name[:2] == "SA" {
			analyzers = append(analyzers, analyzer.Analyzer)
		}
	}

	// Другие анализаторы Staticcheck
	for _, group := range [][]*lint.Analyzer{quickfix.Analyzers, simple.Analyzers, stylecheck.Analyzers} {
		for _, analyzer := range group {
			if extraChecks[analyzer.Analyzer.Name] {
				analyzers = append(analyzers, analyzer.Analyzer)
			}
		}
	}

	// Кастомный анализатор
	analyzers = append(analyzers, nofatal.Analyzer)

	multichecker.Main(analyzers...)
}
