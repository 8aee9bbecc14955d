//go:build !js
// +build !js

package asset

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}
