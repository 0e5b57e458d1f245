// SPDX-License-Identifier: EPL-2.0

package iqtone

import (
	"errors"
	"testing"

	"github.com/ik5/iqtone/internal/audiotest"
	"github.com/ik5/iqtone/pipeline"
)

func TestRenderPCM16_RawSilence(t *testing.T) {
	t.Parallel()

	cfg := pipeline.DefaultConfig()
	cfg.TargetRate = cfg.CaptureRate

	pcm16, err := RenderPCM16([]byte{0x00, 0x00, 0x00, 0x00}, cfg, 4096)
	if err != nil {
		t.Fatalf("RenderPCM16() error = %v", err)
	}

	if len(pcm16) != 2 || pcm16[0] != 0 || pcm16[1] != 0 {
		t.Errorf("pcm16 = %v, want [0 0]", pcm16)
	}
}

func TestRenderPCM16_ToneFullScale(t *testing.T) {
	t.Parallel()

	cfg := pipeline.DefaultConfig()
	cfg.CaptureRate = 1000
	cfg.TargetRate = 500
	cfg.ToneHz = pipeline.Hz(0)
	cfg.WindowSize = 2

	capture := []byte{0x40, 0x00, 0x40, 0x00, 0x40, 0x00, 0x40, 0x00}

	pcm16, err := RenderPCM16(capture, cfg, 4096)
	if err != nil {
		t.Fatalf("RenderPCM16() error = %v", err)
	}

	if len(pcm16) != 2 {
		t.Fatalf("len = %d, want 2", len(pcm16))
	}
	for i, v := range pcm16 {
		if v != 32767 {
			t.Errorf("pcm16[%d] = %d, want 32767", i, v)
		}
	}
}

func TestRenderPCM16_Downsample(t *testing.T) {
	t.Parallel()

	cfg := pipeline.DefaultConfig()
	cfg.CaptureRate = 8000
	cfg.TargetRate = 4000

	// 0x40 decodes to 0.5 on both channels
	capture := make([]byte, 2*8000)
	for i := range capture {
		capture[i] = 0x40
	}

	pcm16, err := RenderPCM16(capture, cfg, 1024)
	if err != nil {
		t.Fatalf("RenderPCM16() error = %v", err)
	}

	if len(pcm16) != 4000 {
		t.Errorf("len = %d, want 4000", len(pcm16))
	}
	for i, v := range pcm16 {
		if v != 16383 {
			t.Fatalf("pcm16[%d] = %d, want 16383", i, v)
		}
	}
}

func TestRenderPCM16_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := pipeline.DefaultConfig()
	cfg.TargetRate = 0

	if _, err := RenderPCM16([]byte{0, 0}, cfg, 64); !errors.Is(err, pipeline.ErrInvalidConfig) {
		t.Errorf("error = %v, want %v", err, pipeline.ErrInvalidConfig)
	}
}

func TestRenderSourcePCM16_StereoRecording(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(16000, 2, 16000, 0.5)

	cfg := pipeline.DefaultConfig()
	cfg.TargetRate = 8000
	cfg.Channel = 1

	pcm16, err := RenderSourcePCM16(src, cfg, 4096)
	if err != nil {
		t.Fatalf("RenderSourcePCM16() error = %v", err)
	}

	if len(pcm16) != 8000 {
		t.Errorf("len = %d, want 8000", len(pcm16))
	}
	if pcm16[0] != 16383 {
		t.Errorf("pcm16[0] = %d, want 16383", pcm16[0])
	}
}

func TestRenderSourcePCM16_TooManyChannels(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(16000, 3, 100, 0.5)

	cfg := pipeline.DefaultConfig()
	cfg.ToneHz = pipeline.Hz(0)

	if _, err := RenderSourcePCM16(src, cfg, 64); !errors.Is(err, pipeline.ErrInvalidConfig) {
		t.Errorf("error = %v, want %v", err, pipeline.ErrInvalidConfig)
	}
}
