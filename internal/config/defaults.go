package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"backend":  "auto",
		"app_name": "Claude Code",
		"timeout":  0,
		"debug":    false,
	}
}
