// ABOUTME: Environment variable expansion in config string fields
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// resolveEnvVars expands ${VAR} patterns in the device settings and in
// layer file paths. Art text is left alone.
func resolveEnvVars(c *Config) {
	d := &c.Device
	d.UUID = expandEnv(d.UUID)
	d.Name = expandEnv(d.Name)
	d.ByUUIDDir = expandEnv(d.ByUUIDDir)
	d.MapperDir = expandEnv(d.MapperDir)
	d.Command = expandEnv(d.Command)

	for i := range c.Theme.Layers {
		l := &c.Theme.Layers[i]
		l.File = expandEnv(l.File)
		l.Image = expandEnv(l.Image)
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
