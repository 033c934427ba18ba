// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// HeaderSize is the length of the canonical PCM header.
const HeaderSize = 44

// MaxSamples is the largest mono 16-bit sample count a RIFF file can describe.
const MaxSamples = (math.MaxUint32 - (HeaderSize - 8)) / 2

// MaxSampleRate is the highest rate whose byte rate fits the header.
const MaxSampleRate = math.MaxUint32 / 2

const (
	formatPCM     = 1
	monoChannels  = 1
	bitsPerSample = 16
	fmtChunkSize  = 16
)

// Header mirrors the canonical 44-byte RIFF/WAVE header.
type Header struct {
	RIFFSize      uint32
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataSize      uint32
}

// NewHeader describes sampleCount mono 16-bit PCM samples at sampleRate.
func NewHeader(sampleRate int, sampleCount int) (Header, error) {
	if sampleRate <= 0 || int64(sampleRate) > MaxSampleRate {
		return Header{}, fmt.Errorf("%w: %d Hz", ErrInvalidSampleRate, sampleRate)
	}
	if sampleCount < 0 || int64(sampleCount) > MaxSamples {
		return Header{}, fmt.Errorf("%w: %d samples", ErrDataTooLarge, sampleCount)
	}

	dataSize := uint32(sampleCount) * 2
	return Header{
		RIFFSize:      HeaderSize - 8 + dataSize,
		AudioFormat:   formatPCM,
		Channels:      monoChannels,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate) * monoChannels * bitsPerSample / 8,
		BlockAlign:    monoChannels * bitsPerSample / 8,
		BitsPerSample: bitsPerSample,
		DataSize:      dataSize,
	}, nil
}

// SampleCount is the number of 16-bit samples in the data chunk.
func (h Header) SampleCount() int {
	return int(h.DataSize / 2)
}

// MarshalBinary lays the header out little-endian.
func (h Header) MarshalBinary() ([]byte, error) {
	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], h.RIFFSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(header[20:22], h.AudioFormat)
	binary.LittleEndian.PutUint16(header[22:24], h.Channels)
	binary.LittleEndian.PutUint32(header[24:28], h.SampleRate)
	binary.LittleEndian.PutUint32(header[28:32], h.ByteRate)
	binary.LittleEndian.PutUint16(header[32:34], h.BlockAlign)
	binary.LittleEndian.PutUint16(header[34:36], h.BitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], h.DataSize)

	return header, nil
}

// ReadHeader parses a canonical 44-byte header from r.
func ReadHeader(r io.Reader) (Header, error) {
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return Header{}, fmt.Errorf("reading WAV header: %w", err)
	}

	if !bytes.Equal(header[0:4], []byte("RIFF")) || !bytes.Equal(header[8:12], []byte("WAVE")) {
		return Header{}, ErrNotWavFile
	}
	if !bytes.Equal(header[12:16], []byte("fmt ")) || binary.LittleEndian.Uint32(header[16:20]) != fmtChunkSize {
		return Header{}, ErrUnsupportedWavLayout
	}
	if !bytes.Equal(header[36:40], []byte("data")) {
		return Header{}, ErrUnsupportedWavChunks
	}

	return Header{
		RIFFSize:      binary.LittleEndian.Uint32(header[4:8]),
		AudioFormat:   binary.LittleEndian.Uint16(header[20:22]),
		Channels:      binary.LittleEndian.Uint16(header[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(header[24:28]),
		ByteRate:      binary.LittleEndian.Uint32(header[28:32]),
		BlockAlign:    binary.LittleEndian.Uint16(header[32:34]),
		BitsPerSample: binary.LittleEndian.Uint16(header[34:36]),
		DataSize:      binary.LittleEndian.Uint32(header[40:44]),
	}, nil
}
