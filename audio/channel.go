// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MixChannels selects the average of all channels instead of a single one.
const MixChannels = -1

// ChannelSelector reduces an interleaved source to one channel: either a
// single channel by index (0 = I for captures) or the average of all of them.
type ChannelSelector struct {
	src     Source
	channel int
	tmp     []float32
}

// NewChannelSelector picks channel from src. Use MixChannels to average.
// An out-of-range channel is reported by ReadSamples as ErrInvalidChannel.
func NewChannelSelector(src Source, channel int) *ChannelSelector {
	return &ChannelSelector{
		src:     src,
		channel: channel,
		tmp:     make([]float32, 4096),
	}
}

// NewMonoMixer averages every channel of src into one.
func NewMonoMixer(src Source) *ChannelSelector {
	return NewChannelSelector(src, MixChannels)
}

func (m *ChannelSelector) SampleRate() float64 { return m.src.SampleRate() }
func (m *ChannelSelector) Channels() int       { return 1 }
func (m *ChannelSelector) BufSize() int        { return m.src.BufSize() }
func (m *ChannelSelector) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (m *ChannelSelector) ReadSamples(dst []float32) (int, error) {
	channels := m.src.Channels()
	if m.channel != MixChannels && (m.channel < 0 || m.channel >= channels) {
		return 0, fmt.Errorf("%w: %d of %d", ErrInvalidChannel, m.channel, channels)
	}

	if len(dst) == 0 {
		return 0, nil
	}

	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	samplesNeeded := len(dst) * channels

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(m.tmp) < samplesNeeded {
		m.tmp = make([]float32, max(samplesNeeded, 8192))
	}
	m.tmp = m.tmp[:samplesNeeded]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}

	frames := n / channels

	if m.channel != MixChannels {
		for f := range frames {
			dst[f] = m.tmp[f*channels+m.channel]
		}
		return frames, err
	}

	invChannels := float32(1.0) / float32(channels)
	for f := range frames {
		sum := float32(0)
		base := f * channels
		for c := range channels {
			sum += m.tmp[base+c]
		}
		dst[f] = sum * invChannels
	}

	return frames, err
}
