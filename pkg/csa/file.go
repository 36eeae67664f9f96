package csa

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadFile reads, decodes and parses one record file. All file handling
// stays in this wrapper; the parsing core itself never touches the
// filesystem.
func LoadFile(path string) (*GameRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := DecodeText(data)
	if err != nil {
		return nil, err
	}
	return Parse(text)
}

// CollectCSA returns all .csa files under root, sorted.
func CollectCSA(root string) ([]string, error) {
	var files []string
	if err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".csa") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
