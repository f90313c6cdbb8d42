package helper

import (
	"os"
	"path/filepath"
)

// SystemConfigDir is the last place configuration files are looked up in
const SystemConfigDir = "/etc/toolshop-datagen"

// GetCfgPath returns the path to the configuration file.
//
// Priority:
// 1. If filename is an absolute path, return it directly.
// 2. Check ./{filename} and ./configs/{filename}
// 3. Otherwise, fallback to /etc/toolshop-datagen/{filename}
func GetCfgPath(filename string) string {
	if filename == "" {
		panic("filename cannot be empty")
	}

	if filepath.IsAbs(filename) {
		return filename
	}

	if found := findInWorkDir(filename); found != "" {
		return found
	}

	// fallback
	return filepath.Join(SystemConfigDir, filename)
}

// ResolveUnder joins p onto dir unless p is already absolute
func ResolveUnder(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func findInWorkDir(filename string) string {
	currentDir, err := os.Getwd()
	if err != nil || currentDir == "" {
		return ""
	}

	for _, candidate := range []string{
		filepath.Join(currentDir, filename),
		filepath.Join(currentDir, "configs", filename),
	} {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if absPath, err := filepath.Abs(candidate); err == nil {
			return absPath
		}
	}
	return ""
}
