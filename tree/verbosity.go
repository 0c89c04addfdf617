package tree

// Verbosity mirrors the CLI's repeated -v flag (spec.md §6): each
// additional -v raises the level by one, up to Trees.
type Verbosity int

const (
	Silent  Verbosity = iota // no diagnostic output
	Banners                  // pass banners only
	Rewrites                 // + per-rewrite and sweep-move diagnostics
	Trees                    // + the tree printed after every pass
)
