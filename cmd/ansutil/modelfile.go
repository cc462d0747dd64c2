package main

import (
	"encoding/binary"
	"fmt"

	ans "github.com/anscore/ansgo"
	"github.com/anscore/ansgo/model"
)

// appendModelTable serializes freqs as a simple length-prefixed
// symbol/freq list and appends it to payloadBytes. The canonical ANS1
// format (payload.Encode) deliberately carries no frequency model, so
// ansutil, as one caller that needs one, defines its own trivial
// on-disk convention: (uint32 symbol, uint64 freq) pairs followed by a
// uint32 entry count, big-endian. The count comes last so that
// splitModelTable can locate the table from the end of the file.
func appendModelTable(payloadBytes []byte, freqs *model.Frequencies) []byte {
	out := payloadBytes
	var tmp [12]byte

	for i := 0; i < freqs.Len(); i++ {
		s, freq, _ := freqs.AtIndex(i)
		binary.BigEndian.PutUint32(tmp[:4], uint32(s))
		binary.BigEndian.PutUint64(tmp[4:12], freq)
		out = append(out, tmp[:12]...)
	}

	binary.BigEndian.PutUint32(tmp[:4], uint32(freqs.Len()))
	out = append(out, tmp[:4]...)

	return out
}

// splitModelTable reverses appendModelTable, returning the payload
// bytes and the rebuilt frequency model.
func splitModelTable(data []byte) ([]byte, *model.Frequencies, error) {
	if len(data) < 4 {
		return nil, nil, fmt.Errorf("%w: file too short to hold a model table", ans.ErrTruncated)
	}

	modelStart := len(data)
	count := binary.BigEndian.Uint32(data[modelStart-4:])

	entriesSize := int(count) * 12

	if modelStart-4-entriesSize < 0 {
		return nil, nil, fmt.Errorf("%w: model table entry count %d doesn't fit", ans.ErrTruncated, count)
	}

	tableOff := modelStart - 4 - entriesSize
	counts := make(map[ans.Symbol]uint64, count)

	for i, off := uint32(0), tableOff; i < count; i, off = i+1, off+12 {
		s := ans.Symbol(binary.BigEndian.Uint32(data[off : off+4]))
		f := binary.BigEndian.Uint64(data[off+4 : off+12])
		counts[s] = f
	}

	freqs, err := model.New(counts)

	if err != nil {
		return nil, nil, err
	}

	return data[:tableOff], freqs, nil
}
