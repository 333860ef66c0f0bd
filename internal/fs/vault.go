// Package fs manages the GenPad vault directory, which holds the saved
// settings file and the log file.
package fs

import (
	"fmt"
	"os"
)

// EnsureVaultExists creates the vault directory (0755) if it is missing.
// An existing path must be a directory the owner can write to.
//
// Example:
//
//	if err := fs.EnsureVaultExists(cfg.VaultPath); err != nil {
//	    log.Fatalf("Failed to initialize vault: %v", err)
//	}
func EnsureVaultExists(path string) error {
	if path == "" {
		return fmt.Errorf("vault path is empty")
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create vault directory: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check vault directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("vault path exists but is not a directory: %s", path)
	}
	if info.Mode().Perm()&0200 == 0 {
		return fmt.Errorf("insufficient permissions to write to vault directory: %s", path)
	}

	return nil
}
