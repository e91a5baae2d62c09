package cliconfig

// MergeConfig merges source config into target, updating sources tracking.
// Only non-zero values from source are applied.
func MergeConfig(target, source *CLIConfig, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.EditorURL != "" {
		target.EditorURL = source.EditorURL
		target.Sources["editorUrl"] = sourceType
	}
	if source.Host != "" {
		target.Host = source.Host
		target.Sources["host"] = sourceType
	}
	if source.Port != 0 {
		target.Port = source.Port
		target.Sources["port"] = sourceType
	}
	if intIsSet(source, "timeout", source.Timeout) {
		target.Timeout = source.Timeout
		target.Sources["timeout"] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources["logLevel"] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources["logFormat"] = sourceType
	}
	if source.Layout != "" {
		target.Layout = source.Layout
		target.Sources["layout"] = sourceType
	}
	if boolIsSet(source, "verbose", source.Verbose) {
		target.Verbose = source.Verbose
		target.Sources["verbose"] = sourceType
	}
	if boolIsSet(source, "json", source.JSON) {
		target.JSON = source.JSON
		target.Sources["json"] = sourceType
	}
}

// boolIsSet reports whether a boolean field identified by its YAML key was
// explicitly set in the source config. Without SetFields (configs built in
// code) only true counts as set.
func boolIsSet(cfg *CLIConfig, yamlKey string, value bool) bool {
	if cfg.SetFields != nil {
		return cfg.SetFields[yamlKey]
	}
	return value
}

// intIsSet is boolIsSet for integers where zero is meaningful.
func intIsSet(cfg *CLIConfig, yamlKey string, value int) bool {
	if cfg.SetFields != nil {
		return cfg.SetFields[yamlKey]
	}
	return value != 0
}
