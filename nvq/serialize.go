// SPDX-License-Identifier: MIT
package nvq

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

const currentVersion int32 = 1

// WriteHeader serializes the quantizer's shared configuration: version,
// global mean, bitsPerDim, M, subSizes.
func (q *Quantizer) WriteHeader(w io.Writer) (int64, error) {
	buf := new(bytes.Buffer)
	writeI32(buf, currentVersion)
	writeI32(buf, int32(len(q.GlobalMean)))
	for _, v := range q.GlobalMean {
		writeF32(buf, v)
	}
	writeI32(buf, int32(q.BitsPerDim))
	writeI32(buf, int32(q.M))
	for _, s := range q.SubSizes {
		writeI32(buf, int32(s))
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// ReadQuantizer deserializes the shared header written by WriteHeader.
func ReadQuantizer(r io.Reader) (*Quantizer, error) {
	br := newByteReader(r)

	version, err := br.readI32()
	if err != nil {
		return nil, err
	}
	if version != currentVersion {
		return nil, ErrUnsupportedVersion
	}

	meanLen, err := br.readI32()
	if err != nil {
		return nil, err
	}
	var mean []float32
	if meanLen > 0 {
		mean = make([]float32, meanLen)
		for i := range mean {
			v, err := br.readF32()
			if err != nil {
				return nil, err
			}
			mean[i] = v
		}
	}

	bits, err := br.readI32()
	if err != nil {
		return nil, err
	}
	if bits != 4 && bits != 8 {
		return nil, ErrBadBitsPerDim
	}

	m, err := br.readI32()
	if err != nil {
		return nil, err
	}
	if m <= 0 {
		return nil, ErrCorruptVector
	}

	sizes := make([]int, m)
	dim := 0
	for i := range sizes {
		s, err := br.readI32()
		if err != nil {
			return nil, err
		}
		if s <= 0 {
			return nil, ErrCorruptVector
		}
		sizes[i] = int(s)
		dim += int(s)
	}

	q := &Quantizer{
		Dimension:  dim,
		M:          int(m),
		SubSizes:   sizes,
		Offsets:    subspaceOffsets(sizes),
		BitsPerDim: int(bits),
		GlobalMean: mean,
	}
	return q, nil
}

// WriteVector serializes one compressed Vector in the per-vector layout:
// the subvector count, then for each subvector its bitsPerDim, minValue,
// maxValue, growthRate, midpoint, originalDim, packed length and the
// packed bytes.
func (cv *Vector) WriteVector(w io.Writer) (int64, error) {
	buf := new(bytes.Buffer)
	writeI32(buf, int32(len(cv.Subvectors)))
	for _, sv := range cv.Subvectors {
		writeI32(buf, int32(sv.BitsPerDim))
		writeF32(buf, sv.MinValue)
		writeF32(buf, sv.MaxValue)
		writeF32(buf, sv.GrowthRate)
		writeF32(buf, sv.Midpoint)
		writeI32(buf, int32(sv.OriginalDim))
		writeI32(buf, int32(len(sv.Packed)))
		buf.Write(sv.Packed)
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// ReadVector deserializes one compressed Vector written by WriteVector.
func ReadVector(r io.Reader) (*Vector, error) {
	br := newByteReader(r)

	numSub, err := br.readI32()
	if err != nil {
		return nil, err
	}
	if numSub <= 0 {
		return nil, ErrCorruptVector
	}

	subs := make([]Subvector, numSub)
	for i := range subs {
		bits, err := br.readI32()
		if err != nil {
			return nil, err
		}
		minV, err := br.readF32()
		if err != nil {
			return nil, err
		}
		maxV, err := br.readF32()
		if err != nil {
			return nil, err
		}
		rate, err := br.readF32()
		if err != nil {
			return nil, err
		}
		mid, err := br.readF32()
		if err != nil {
			return nil, err
		}
		origDim, err := br.readI32()
		if err != nil {
			return nil, err
		}
		packedLenField, err := br.readI32()
		if err != nil {
			return nil, err
		}
		if int(packedLenField) != packedLen(int(origDim), int(bits)) {
			return nil, ErrCorruptVector
		}
		packed := make([]byte, packedLenField)
		if _, err := io.ReadFull(br.r, packed); err != nil {
			return nil, err
		}
		subs[i] = Subvector{
			BitsPerDim:  int(bits),
			MinValue:    minV,
			MaxValue:    maxV,
			GrowthRate:  rate,
			Midpoint:    mid,
			OriginalDim: int(origDim),
			Packed:      packed,
		}
	}
	return &Vector{Subvectors: subs}, nil
}

func writeI32(buf *bytes.Buffer, v int32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(v))
	buf.Write(tmp[:])
}

func writeF32(buf *bytes.Buffer, v float32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], math.Float32bits(v))
	buf.Write(tmp[:])
}

type byteReader struct {
	r io.Reader
}

func newByteReader(r io.Reader) *byteReader { return &byteReader{r: r} }

func (br *byteReader) readI32() (int32, error) {
	var tmp [4]byte
	if _, err := io.ReadFull(br.r, tmp[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(tmp[:])), nil
}

func (br *byteReader) readF32() (float32, error) {
	var tmp [4]byte
	if _, err := io.ReadFull(br.r, tmp[:]); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(tmp[:])), nil
}
