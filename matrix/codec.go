// SPDX-License-Identifier: MIT
// Package matrix: versioned serialization of Incidence and PresenceIndex.
//
// Incidence array format, version 1 (big-endian):
//
//	offset size  field
//	0      4     magic "PAMX"
//	4      1     version (1)
//	5      4     rows    uint32
//	9      4     cols    uint32
//	13     n     cells, row-major, 8 per byte, most significant bit first,
//	             n = ceil(rows*cols/8), trailing pad bits zero
//
// PresenceIndex format, version 1 (JSON):
//
//	{"version":1,"sites":[{"id":3,"present":true},...],"layers":[...]}
//
// The two formats are versioned independently.

package matrix

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

const (
	// IncidenceFormatVersion is the current Incidence array format version.
	IncidenceFormatVersion byte = 1
	// IndexFormatVersion is the current PresenceIndex format version.
	IndexFormatVersion = 1

	headerLen = 13
)

var incidenceMagic = [4]byte{'P', 'A', 'M', 'X'}

// MarshalBinary encodes m in the Incidence array format.
func (m *Incidence) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes m to w in the Incidence array format.
func (m *Incidence) WriteTo(w io.Writer) (int64, error) {
	if m == nil {
		return 0, fmt.Errorf("WriteTo: %w", ErrNilMatrix)
	}
	hdr := make([]byte, headerLen, headerLen+(len(m.data)+7)/8)
	copy(hdr, incidenceMagic[:])
	hdr[4] = IncidenceFormatVersion
	binary.BigEndian.PutUint32(hdr[5:9], uint32(m.r))
	binary.BigEndian.PutUint32(hdr[9:13], uint32(m.c))

	packed := hdr[headerLen:cap(hdr)]
	for k, v := range m.data {
		if v {
			packed[k>>3] |= 0x80 >> uint(k&7)
		}
	}
	n, err := w.Write(hdr[:cap(hdr)])
	if err != nil {
		return int64(n), fmt.Errorf("WriteTo: %w", err)
	}
	return int64(n), nil
}

// UnmarshalBinary decodes data in the Incidence array format into m.
// Returns ErrBadFormat for a bad magic or length, ErrUnsupportedVersion for
// an unknown version byte.
func (m *Incidence) UnmarshalBinary(data []byte) error {
	if len(data) < headerLen || !bytes.Equal(data[:4], incidenceMagic[:]) {
		return fmt.Errorf("UnmarshalBinary: %w", ErrBadFormat)
	}
	if data[4] != IncidenceFormatVersion {
		return fmt.Errorf("UnmarshalBinary: version %d: %w", data[4], ErrUnsupportedVersion)
	}
	r := int(binary.BigEndian.Uint32(data[5:9]))
	c := int(binary.BigEndian.Uint32(data[9:13]))
	cells := r * c
	if r < 0 || c < 0 || (c != 0 && cells/c != r) {
		return fmt.Errorf("UnmarshalBinary: %dx%d: %w", r, c, ErrBadFormat)
	}
	packed := data[headerLen:]
	if len(packed) != (cells+7)/8 {
		return fmt.Errorf("UnmarshalBinary: %d payload bytes for %dx%d: %w", len(packed), r, c, ErrBadFormat)
	}

	m.r, m.c = r, c
	m.data = make([]bool, cells)
	for k := range m.data {
		m.data[k] = packed[k>>3]&(0x80>>uint(k&7)) != 0
	}
	return nil
}

// ReadIncidence reads a whole Incidence array payload from r.
func ReadIncidence(r io.Reader) (*Incidence, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ReadIncidence: %w", err)
	}
	m := &Incidence{}
	if err := m.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return m, nil
}

type presenceEntry struct {
	ID      int  `json:"id"`
	Present bool `json:"present"`
}

type presenceDoc struct {
	Version int             `json:"version"`
	Sites   []presenceEntry `json:"sites"`
	Layers  []presenceEntry `json:"layers"`
}

// MarshalJSON encodes p in the PresenceIndex format.
func (p *PresenceIndex) MarshalJSON() ([]byte, error) {
	doc := presenceDoc{
		Version: IndexFormatVersion,
		Sites:   make([]presenceEntry, len(p.SiteIDs)),
		Layers:  make([]presenceEntry, len(p.LayerIDs)),
	}
	for i, id := range p.SiteIDs {
		doc.Sites[i] = presenceEntry{ID: id, Present: p.SitesPresent[id]}
	}
	for i, id := range p.LayerIDs {
		doc.Layers[i] = presenceEntry{ID: id, Present: p.LayersPresent[id]}
	}
	return json.Marshal(doc)
}

// UnmarshalJSON decodes the PresenceIndex format into p.
// Returns ErrUnsupportedVersion for an unknown version and ErrDuplicateID for repeated ids.
func (p *PresenceIndex) UnmarshalJSON(data []byte) error {
	var doc presenceDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("PresenceIndex.UnmarshalJSON: %v: %w", err, ErrBadFormat)
	}
	if doc.Version != IndexFormatVersion {
		return fmt.Errorf("PresenceIndex.UnmarshalJSON: version %d: %w", doc.Version, ErrUnsupportedVersion)
	}
	sites := make([]int, len(doc.Sites))
	for i, e := range doc.Sites {
		sites[i] = e.ID
	}
	layers := make([]int, len(doc.Layers))
	for i, e := range doc.Layers {
		layers[i] = e.ID
	}
	idx, err := NewPresenceIndex(sites, layers)
	if err != nil {
		return fmt.Errorf("PresenceIndex.UnmarshalJSON: %w", err)
	}
	for _, e := range doc.Sites {
		idx.SitesPresent[e.ID] = e.Present
	}
	for _, e := range doc.Layers {
		idx.LayersPresent[e.ID] = e.Present
	}
	*p = *idx
	return nil
}
