// SPDX-License-Identifier: EPL-2.0

package iq

import (
	"fmt"
	"io"
	"os"
)

// Load reads a whole capture into memory.
func Load(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading capture: %w", err)
	}
	return data, nil
}

// LoadFile reads the capture stored at path.
func LoadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading capture: %w", err)
	}
	return data, nil
}
