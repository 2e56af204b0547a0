// ABOUTME: Locates the encrypted block device by filesystem UUID and checks for an existing mapping
// ABOUTME: by-uuid entries are relative symlinks, so targets are joined to their directory and canonicalized

package unlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrDeviceNotFound means the by-uuid entry never appeared.
	ErrDeviceNotFound = errors.New("encrypted device not found")

	// ErrAlreadyOpen means the mapping already exists and nothing was done.
	ErrAlreadyOpen = errors.New("device mapping already exists")
)

// ResolveDevice returns the canonical device path behind byUUIDDir/uuid,
// e.g. /dev/sda2 for /dev/disk/by-uuid/<uuid> -> ../../sda2.
func ResolveDevice(byUUIDDir, uuid string) (string, error) {
	if uuid == "" {
		return "", fmt.Errorf("%w: empty uuid", ErrDeviceNotFound)
	}
	link := filepath.Join(byUUIDDir, uuid)
	target, err := os.Readlink(link)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", link, err)
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(link), target)
	}
	path, err := filepath.EvalSymlinks(target)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", target, err)
	}
	return path, nil
}

// MapperExists reports whether mapperDir/name exists.
func MapperExists(mapperDir, name string) bool {
	_, err := os.Lstat(filepath.Join(mapperDir, name))
	return err == nil
}
