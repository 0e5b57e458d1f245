// SPDX-License-Identifier: EPL-2.0

package iq

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Encoding selects the pass-through output format.
type Encoding int

const (
	// LittleEndian writes each sample as two little-endian float32 values.
	LittleEndian Encoding = iota
	// BigEndian writes each sample as two big-endian float32 values.
	BigEndian
	// Text writes each sample as a "I,Q\n" line.
	Text
)

func (e Encoding) String() string {
	switch e {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	case Text:
		return "text"
	default:
		return "Encoding(" + strconv.Itoa(int(e)) + ")"
	}
}

// ParseEncoding accepts "little-endian", "big-endian" and "text" in any case,
// with or without the dash, plus the short forms "le" and "be".
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "") {
	case "littleendian", "le":
		return LittleEndian, nil
	case "bigendian", "be":
		return BigEndian, nil
	case "text", "txt":
		return Text, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
}

// Writer serializes samples in one Encoding. Output is buffered; call Flush
// when done.
type Writer struct {
	w       *bufio.Writer
	enc     Encoding
	scratch []byte
}

func NewWriter(w io.Writer, enc Encoding) *Writer {
	return &Writer{
		w:       bufio.NewWriter(w),
		enc:     enc,
		scratch: make([]byte, 0, 32),
	}
}

// Write encodes a single sample.
func (w *Writer) Write(s Sample) error {
	b := w.scratch[:0]

	switch w.enc {
	case LittleEndian:
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(s.I))
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(s.Q))
	case BigEndian:
		b = binary.BigEndian.AppendUint32(b, math.Float32bits(s.I))
		b = binary.BigEndian.AppendUint32(b, math.Float32bits(s.Q))
	case Text:
		b = strconv.AppendFloat(b, float64(s.I), 'f', -1, 32)
		b = append(b, ',')
		b = strconv.AppendFloat(b, float64(s.Q), 'f', -1, 32)
		b = append(b, '\n')
	default:
		return fmt.Errorf("%w: %v", ErrUnknownEncoding, w.enc)
	}

	w.scratch = b
	if _, err := w.w.Write(b); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Copy drains r into the writer and flushes it. It returns the number of
// samples written.
func (w *Writer) Copy(r Reader) (int, error) {
	buf := make([]Sample, 4096)
	total := 0

	for {
		n, err := r.ReadIQ(buf)
		for _, s := range buf[:n] {
			if werr := w.Write(s); werr != nil {
				return total, werr
			}
			total++
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return total, fmt.Errorf("%w", err)
		}
	}

	return total, w.Flush()
}

func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
