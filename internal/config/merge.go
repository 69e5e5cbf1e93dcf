package config

// Merge merges a loaded config on top of defaults. Lists and scalars set
// in loaded replace the default ones; anything loaded leaves unset keeps
// its default value.
func Merge(defaults, loaded *Config) *Config {
	merged := &Config{
		Ignore:    append([]string(nil), defaults.Ignore...),
		Files:     append([]string(nil), defaults.Files...),
		Gitignore: defaults.Gitignore,
		Jobs:      defaults.Jobs,
	}
	if loaded == nil {
		return merged
	}

	if loaded.Ignore != nil {
		merged.Ignore = append([]string(nil), loaded.Ignore...)
	}
	if loaded.Files != nil {
		merged.Files = append([]string(nil), loaded.Files...)
	}
	if loaded.Gitignore != nil {
		merged.Gitignore = loaded.Gitignore
	}
	if loaded.Jobs != 0 {
		merged.Jobs = loaded.Jobs
	}
	return merged
}
