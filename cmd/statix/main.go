// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"statix/internal/cha"
	"statix/internal/deadcode"
	"statix/internal/errors"
	"statix/internal/heap"
	"statix/internal/intercp"
	"statix/internal/intracp"
	"statix/internal/ir"
	"statix/internal/irtext"
	"statix/internal/pta"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if cfg.IRFile == "" {
		fmt.Println("Usage: statix -ir-text <file> -entry <Class.sig> [-taint-config <file>] [-pta insensitive|kobject:<k>]")
		os.Exit(1)
	}

	prog, err := irtext.ParseFile(cfg.IRFile)
	if err != nil {
		os.Exit(1)
	}
	mp, err := irtext.Build(prog)
	if err != nil {
		color.Red("error: %s", err)
		os.Exit(1)
	}

	refs := mp.All()
	if errs := errors.Validate(mp, refs); len(errs) > 0 {
		reporter := errors.NewReporter()
		for _, e := range errs {
			reporter.Report(e)
		}
		os.Exit(1)
	}

	entry, ok := resolveEntry(refs, cfg.Entry)
	if !ok {
		color.Red("error: entry method %q not found in %s", cfg.Entry, cfg.IRFile)
		os.Exit(1)
	}

	hier := flatHierarchy(refs)

	chaGraph := cha.Build(mp, hier, entry)
	fmt.Printf("CHA: %d method(s) reachable, %d call edge(s)\n", len(chaGraph.Reachable), len(chaGraph.Edges))

	sel, err := cfg.selector()
	if err != nil {
		color.Red("error: %s", err)
		os.Exit(1)
	}
	taintCfg, err := cfg.loadTaintConfig()
	if err != nil {
		color.Red("error: %s", err)
		os.Exit(1)
	}

	ptaSolver := pta.New(mp, hier, heap.AllocationSite{}, sel, taintCfg)
	ptaRes := ptaSolver.Run(entry)
	fmt.Printf("PTA: %d context-sensitive method(s) reachable\n", len(ptaRes.CallGraph.Reachable()))

	icRes := intercp.Run(mp, ptaRes, entry)

	reportDeadCode(mp, refs, icRes)

	if taintCfg != nil {
		reportTaintFlows(ptaRes)
	}

	color.Green("done")
}

func resolveEntry(refs []ir.MethodRef, spec string) (ir.MethodRef, bool) {
	class, sig, ok := strings.Cut(spec, ".")
	if !ok {
		return ir.MethodRef{}, false
	}
	want := ir.MethodRef{Class: ir.ClassRef(class), Sig: ir.Subsignature(sig)}
	for _, ref := range refs {
		if ref == want {
			return ref, true
		}
	}
	return ir.MethodRef{}, false
}

// reportDeadCode runs dead-code detection per method. Where the
// interprocedural constant-propagation pass actually covers a method
// (everything reachable from entry), its field/alias-aware facts are
// reused directly — intracp.Result and intercp.Result are the same
// dataflow.Result[ir.Stmt, *fact.CPFact[*ir.Var]] instantiation, so no
// conversion is needed. Anything irtext loaded but entry never reaches
// falls back to a fresh intraprocedural pass.
func reportDeadCode(mp *ir.MapProvider, refs []ir.MethodRef, icRes *intercp.Result) {
	sort.Slice(refs, func(i, j int) bool { return refs[i].String() < refs[j].String() })
	for _, ref := range refs {
		f, ok := mp.Method(ref)
		if !ok {
			continue
		}
		var cp *intracp.Result
		if len(f.Stmts) > 0 {
			if _, covered := icRes.In[f.Stmts[0]]; covered {
				cp = icRes
			}
		}
		if cp == nil {
			cp = intracp.Analyze(f)
		}
		live := deadcode.Liveness(f)
		res := deadcode.Detect(f, cp, live)
		for _, s := range res.Dead {
			fmt.Printf("dead code: %s statement #%d\n", ref, s.Index())
		}
	}
}

func reportTaintFlows(res *pta.Result) {
	for _, flow := range res.TaintFlows() {
		fmt.Printf("taint flow: %s#%d -> %s arg %d\n", flow.SourceMethod, flow.SourceIndex, flow.SinkMethod, flow.Arg)
	}
}
