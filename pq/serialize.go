// SPDX-License-Identifier: MIT
package pq

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/katalvlaran/vamana/kmeans"
)

const (
	magic          int32 = 0x75EC4012
	currentVersion int32 = 3
)

// WriteTo serializes cb in the version-3 binary layout
// (big-endian multi-byte fields).
func (cb *Codebook) WriteTo(w io.Writer) (int64, error) {
	buf := new(bytes.Buffer)

	writeI32(buf, magic)
	writeI32(buf, currentVersion)

	writeI32(buf, int32(len(cb.GlobalCentroid)))
	for _, v := range cb.GlobalCentroid {
		writeF32(buf, v)
	}

	writeI32(buf, int32(cb.M))
	for _, s := range cb.SubSizes {
		writeI32(buf, int32(s))
	}

	writeF32(buf, cb.AnisotropicThreshold)

	writeI32(buf, int32(cb.K))
	for m := 0; m < cb.M; m++ {
		for k := 0; k < cb.K; k++ {
			for _, v := range cb.Centroids[m][k] {
				writeF32(buf, v)
			}
		}
	}

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// ReadCodebook deserializes a Codebook, accepting both the version-3 layout
// (magic-prefixed) and the legacy version-0 layout (no magic, version, or
// anisoThreshold; starts directly with globalCentroidLen).
// Readers MUST accept both by peeking the first word.
func ReadCodebook(r io.Reader) (*Codebook, error) {
	br := newByteReader(r)

	first, err := br.readI32()
	if err != nil {
		return nil, err
	}

	cb := &Codebook{}
	if first == magic {
		version, err := br.readI32()
		if err != nil {
			return nil, err
		}
		if version != currentVersion {
			return nil, ErrUnsupportedVersion
		}
		if err := readBody(br, cb, true); err != nil {
			return nil, err
		}
	} else {
		// Legacy version 0: `first` is globalCentroidLen itself.
		if err := readLegacyBody(br, cb, first); err != nil {
			return nil, err
		}
	}

	if err := cb.validateLayout(); err != nil {
		return nil, err
	}
	return cb, nil
}

func readBody(br *byteReader, cb *Codebook, hasAniso bool) error {
	gLen, err := br.readI32()
	if err != nil {
		return err
	}
	return readRest(br, cb, gLen, hasAniso)
}

func readLegacyBody(br *byteReader, cb *Codebook, gLen int32) error {
	return readRest(br, cb, gLen, false)
}

func readRest(br *byteReader, cb *Codebook, gLen int32, hasAniso bool) error {
	if gLen < 0 {
		return ErrCorruptLayout
	}
	if gLen > 0 {
		cb.GlobalCentroid = make([]float32, gLen)
		for i := range cb.GlobalCentroid {
			v, err := br.readF32()
			if err != nil {
				return err
			}
			cb.GlobalCentroid[i] = v
		}
	}

	m, err := br.readI32()
	if err != nil {
		return err
	}
	if m <= 0 {
		return ErrCorruptLayout
	}
	cb.M = int(m)

	cb.SubSizes = make([]int, cb.M)
	dim := 0
	for i := range cb.SubSizes {
		s, err := br.readI32()
		if err != nil {
			return err
		}
		if s <= 0 {
			return ErrCorruptLayout
		}
		cb.SubSizes[i] = int(s)
		dim += int(s)
	}
	cb.Offsets = subspaceOffsets(cb.SubSizes)
	cb.Dimension = dim

	if hasAniso {
		t, err := br.readF32()
		if err != nil {
			return err
		}
		cb.AnisotropicThreshold = t
	} else {
		cb.AnisotropicThreshold = kmeans.Unweighted
	}

	k, err := br.readI32()
	if err != nil {
		return err
	}
	if k <= 0 {
		return ErrCorruptLayout
	}
	cb.K = int(k)

	cb.Centroids = make([][][]float32, cb.M)
	for m := 0; m < cb.M; m++ {
		cb.Centroids[m] = make([][]float32, cb.K)
		for k := 0; k < cb.K; k++ {
			row := make([]float32, cb.SubSizes[m])
			for d := range row {
				v, err := br.readF32()
				if err != nil {
					return err
				}
				row[d] = v
			}
			cb.Centroids[m][k] = row
		}
	}
	return nil
}

// validateLayout enforces the load-path invariant checks: sum(subSizes)
// must equal the declared dimension, and every centroid row must match its
// subspace width.
func (cb *Codebook) validateLayout() error {
	sum := 0
	for _, s := range cb.SubSizes {
		sum += s
	}
	if sum != cb.Dimension {
		return ErrCorruptLayout
	}
	if cb.GlobalCentroid != nil && len(cb.GlobalCentroid) != cb.Dimension {
		return ErrCorruptLayout
	}
	for m, row := range cb.Centroids {
		if len(row) != cb.K {
			return ErrCorruptLayout
		}
		for _, c := range row {
			if len(c) != cb.SubSizes[m] {
				return ErrCorruptLayout
			}
		}
	}
	return nil
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
