// Package optimize implements the five tree-rewriting passes and the
// fixed-point driver that runs them (spec.md §4.E). Every pass is a
// tree.Table driven by tree.Traverse; mark-and-sweep runs after each
// individual pass, with root as the sole GC root, to reclaim whatever
// that pass orphaned.
package optimize

import (
	"fmt"
	"io"

	"github.com/wcomp/tcc/tree"
)

// Options configures a run of the optimizer.
type Options struct {
	// Level selects how much of the pipeline runs: 0 disables the
	// optimizer entirely, 1 runs passes 1-3 to a fixed point, 2 or more
	// additionally runs passes 4 and 5 once.
	Level int

	Verbosity tree.Verbosity
	Out       io.Writer
}

func (o Options) logf(level tree.Verbosity, format string, args ...interface{}) {
	if o.Verbosity >= level && o.Out != nil {
		fmt.Fprintf(o.Out, format, args...)
	}
}

// Run drives the optimizer over root. pool must be the same pool root
// and every reachable node were allocated from; Run sweeps it after
// every pass.
func Run(pool *tree.Pool, root *tree.Node, opts Options) {
	if opts.Level == 0 {
		return
	}

	optcnt := 0
	for {
		runPass(pool, root, 1, opts, PassOperandSort(opts))

		optcnt = 0
		runPass(pool, root, 2, opts, PassConstantFold(&optcnt, pool, opts))
		runPass(pool, root, 3, opts, PassConstantPropagate(&optcnt, opts))

		if optcnt == 0 {
			break
		}
	}

	if opts.Level > 1 {
		runPass(pool, root, 4, opts, PassDeadVariableMark())
		runPass(pool, root, 4, opts, PassDeadVariableSweep(opts))
		runPass(pool, root, 5, opts, PassConstantCondition(opts))
	}
}

// runPass prints the entry/exit banners, runs one pass over root, and
// sweeps the pool with root as the sole GC root, exactly like the
// source's optimize_pass wrapper.
func runPass(pool *tree.Pool, root *tree.Node, n int, opts Options, table tree.Table) {
	opts.logf(tree.Banners, "\n=== Optimization pass %d ===\n\n", n)

	tree.Traverse(root, table)

	tree.Sweep(pool, root, func(node *tree.Node) {
		opts.logf(tree.Rewrites, "[moving %04d to free_memory_pool]\n", node.ID)
	})

	if opts.Verbosity >= tree.Trees {
		fmt.Fprintf(opts.Out, "\n=== After optimization pass %d ===\n\n", n)
		tree.Fprint(opts.Out, root)
	}
}
