package config

// LintConfig selects which topology checks the CLI runs by default and
// whether it derives an adjacency table before validating.
type LintConfig struct {
	// CheckDegenerate reports triangles that repeat a corner vertex.
	CheckDegenerate bool
	// CheckBackfacing reports duplicated neighbor links.
	CheckBackfacing bool
	// CheckBowties reports vertices shared by disconnected triangle fans.
	CheckBowties bool
	// BuildAdjacency derives the adjacency table from the index buffer
	// before validation; backfacing and bowtie checks require it.
	BuildAdjacency bool
}

// default settings for mesh linting
var DefaultLintConfig = LintConfig{
	CheckDegenerate: true,
	CheckBackfacing: true,
	CheckBowties:    true,
	BuildAdjacency:  true,
}
