package domain

// Settings is the user-facing engine configuration, typically loaded
// from a mirror.yaml file.
type Settings struct {
	// Root is the local directory served as the session root.
	Root string
	// BatchSize bounds concurrent remote requests during bulk
	// operations.
	BatchSize int
	// Excludes are subtree names invisible to indexing and watching.
	Excludes []string
	// StructuralExtensions are the source extensions indexed for
	// template nodes.
	StructuralExtensions []string
}

// DefaultSettings returns the standard configuration for a session
// rooted at the current directory.
func DefaultSettings() Settings {
	return Settings{
		Root:                 ".",
		BatchSize:            50,
		Excludes:             []string{"node_modules", ".git", ".next", "dist", "build"},
		StructuralExtensions: DefaultStructuralExtensions(),
	}
}
