// ABOUTME: Standard filesystem paths for cryptsplash configuration and the devices it inspects
// ABOUTME: The config path can be overridden with CRYPTSPLASH_CONFIG or the -config flag

package config

import "os"

const (
	// DefaultPath is where the initramfs hook installs the configuration.
	DefaultPath = "/etc/cryptsplash/config.yaml"

	// DefaultByUUIDDir holds one symlink per filesystem UUID.
	DefaultByUUIDDir = "/dev/disk/by-uuid"

	// DefaultMapperDir holds opened dm-crypt mappings.
	DefaultMapperDir = "/dev/mapper"

	pathEnv = "CRYPTSPLASH_CONFIG"
)

// Path returns the config file to load: CRYPTSPLASH_CONFIG when set,
// DefaultPath otherwise.
func Path() string {
	if p := os.Getenv(pathEnv); p != "" {
		return p
	}
	return DefaultPath
}
