// SPDX-License-Identifier: EPL-2.0

package iq

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/iotest"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	want := []byte{0x7F, 0x80, 0x00}

	got, err := Load(bytes.NewReader(want))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Load() = %v, want %v", got, want)
	}

	boom := errors.New("boom")
	if _, err := Load(iotest.ErrReader(boom)); !errors.Is(err, boom) {
		t.Errorf("Load() error = %v, want %v", err, boom)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "capture.bin")
	if err := os.WriteFile(path, []byte{1, 2, 3, 4}, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(got) != 4 {
		t.Errorf("len = %d, want 4", len(got))
	}

	if _, err := LoadFile(path + ".missing"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile() error = %v, want %v", err, os.ErrNotExist)
	}
}
