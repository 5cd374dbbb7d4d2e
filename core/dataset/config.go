package dataset

// Config holds configuration for where the dataset is loaded from.
type Config struct {
	// Source selects the loader: embedded, dir or bucket.
	Source string `mapstructure:"source" default:"embedded"`
	// Dir is the root directory holding the source folders when Source is "dir".
	Dir string `mapstructure:"dir" default:"./data"`
	// Prefix is the object key prefix when Source is "bucket".
	Prefix string `mapstructure:"prefix" default:"divisions/"`
	// CodeColumn is the zero based column holding the division code.
	CodeColumn int `mapstructure:"code_column" default:"2"`
	// NameColumn is the zero based column holding the division name.
	NameColumn int `mapstructure:"name_column" default:"3"`
	// RevisionDelimiter separates a source prefix from the dated part of a revision.
	RevisionDelimiter string `mapstructure:"revision_delimiter" default:"-"`
}

const (
	SourceEmbedded = "embedded"
	SourceDir      = "dir"
	SourceBucket   = "bucket"
)

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceEmbedded, SourceDir, SourceBucket:
		return true
	default:
		return false
	}
}

// Layout returns the column layout described by the configuration.
func (c Config) Layout() Layout {
	return Layout{CodeColumn: c.CodeColumn, NameColumn: c.NameColumn}
}
