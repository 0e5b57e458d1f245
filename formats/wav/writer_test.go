// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/iqtone/audio"
	"github.com/ik5/iqtone/internal/audiotest"
)

func createTemp(t *testing.T) *os.File {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	t.Cleanup(func() { f.Close() })

	return f
}

func TestWriter_RoundTrip(t *testing.T) {
	t.Parallel()

	f := createTemp(t)

	w := NewWriter(f, 44100, 1)
	if err := w.Write([]float32{0, 0.5, -0.5, 1, -1, 3}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if w.Frames() != 6 {
		t.Errorf("Frames() = %d, want 6", w.Frames())
	}

	if _, err := f.Seek(0, 0); err != nil {
		t.Fatal(err)
	}

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 44100 || src.Channels() != 1 {
		t.Errorf("format = %v Hz x %d, want 44100 Hz x 1", src.SampleRate(), src.Channels())
	}

	got, err := audio.ReadAll(src, 64)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	want := []int{0, 16383, -16383, 32767, -32767, 32767}
	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if int(got[i]*32768) != want[i] {
			t.Errorf("sample %d = %v, want %d/32768", i, got[i], want[i])
		}
	}
}

func TestWriteSource(t *testing.T) {
	t.Parallel()

	f := createTemp(t)

	frames, err := WriteSource(f, audiotest.NewConstantSource(22050, 2, 5000, 0.25))
	if err != nil {
		t.Fatalf("WriteSource() error = %v", err)
	}
	if frames != 5000 {
		t.Errorf("frames = %d, want 5000", frames)
	}

	info, err := f.Stat()
	if err != nil {
		t.Fatal(err)
	}
	if want := int64(44 + 5000*2*2); info.Size() != want {
		t.Errorf("file size = %d, want %d", info.Size(), want)
	}

	if _, err := f.Seek(0, 0); err != nil {
		t.Fatal(err)
	}
	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 22050 || src.Channels() != 2 {
		t.Errorf("format = %v Hz x %d, want 22050 Hz x 2", src.SampleRate(), src.Channels())
	}
}
