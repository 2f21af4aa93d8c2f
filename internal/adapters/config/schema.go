package config

// mirrorfile represents the structure of the mirror.yaml
// configuration file.
type mirrorfile struct {
	Version              string   `yaml:"version"`
	Root                 string   `yaml:"root"`
	BatchSize            int      `yaml:"batch_size"`
	Excludes             []string `yaml:"excludes"`
	StructuralExtensions []string `yaml:"structural_extensions"`
}
