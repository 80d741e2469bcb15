package config

// Source identifies which of the configuration sources produced a Config.
type Source int

const (
	SourceDefaults Source = iota
	SourceInline
	SourceExplicitPath
	SourceDefaultPath
)

func (s Source) String() string {
	switch s {
	case SourceInline:
		return "inline"
	case SourceExplicitPath:
		return "explicit-path"
	case SourceDefaultPath:
		return "default-path"
	default:
		return "defaults"
	}
}
