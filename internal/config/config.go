package config

// Config holds app configuration
type Config struct {
	// Format selects the archive variant (classic, encrypted)
	Format string `mapstructure:"format"`

	// Archive is the path to the BIG archive to operate on
	Archive string `mapstructure:"archive"`

	// Dest is the destination directory for extraction
	Dest string `mapstructure:"dest"`

	// Source is the directory tree to pack when creating an archive
	Source string `mapstructure:"source"`

	// Exclude is a glob matched against source file names to skip when packing
	Exclude string `mapstructure:"exclude"`

	// NoDecompress extracts compressed members as stored, without inflating
	NoDecompress bool `mapstructure:"no_decompress"`

	LogLevel     string `mapstructure:"log_level"`
	LogOutputDir string `mapstructure:"log_output_dir"`
}
