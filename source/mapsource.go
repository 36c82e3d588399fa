package source

// MapSource is an in-memory DataSource backed by maps. The zero value is
// not ready for use; construct with NewMapSource. Populate with the SetX
// mutators before handing the source to an inspector — the DataSource
// surface itself is read-only and a MapSource must not be mutated while
// queries are in flight.
type MapSource struct {
	floats   map[string][]float64
	ints     map[string][]int
	specGrid *SpecGrid
}

// NewMapSource returns an empty MapSource.
func NewMapSource() *MapSource {
	return &MapSource{
		floats: make(map[string][]float64),
		ints:   make(map[string][]int),
	}
}

// SetFloats stores a floating-point keyword array. The slice is stored by
// reference; callers own it and must not mutate it afterwards.
func (m *MapSource) SetFloats(name string, vals []float64) {
	m.floats[name] = vals
}

// SetInts stores an integer keyword array, by reference as with SetFloats.
func (m *MapSource) SetInts(name string, vals []int) {
	m.ints[name] = vals
}

// SetSpecGrid stores the structured grid declaration. After this call
// HasField(KwSpecGrid) reports true.
func (m *MapSource) SetSpecGrid(sg SpecGrid) {
	m.specGrid = &sg
}

// HasField reports whether the named keyword is present, in either the
// float or integer store, or as the SPECGRID record.
func (m *MapSource) HasField(name string) bool {
	if name == KwSpecGrid && m.specGrid != nil {
		return true
	}
	if _, ok := m.floats[name]; ok {
		return true
	}
	_, ok := m.ints[name]
	return ok
}

// HasFields reports whether every named keyword is present.
func (m *MapSource) HasFields(names []string) bool {
	for _, name := range names {
		if !m.HasField(name) {
			return false
		}
	}
	return true
}

// FloatValues returns the named floating-point array, or ErrUnknownField.
func (m *MapSource) FloatValues(name string) ([]float64, error) {
	vals, ok := m.floats[name]
	if !ok {
		return nil, wrapUnknown(name)
	}
	return vals, nil
}

// IntValues returns the named integer array, or ErrUnknownField.
func (m *MapSource) IntValues(name string) ([]int, error) {
	vals, ok := m.ints[name]
	if !ok {
		return nil, wrapUnknown(name)
	}
	return vals, nil
}

// SpecGrid returns the stored grid declaration, or ErrNoSpecGrid.
func (m *MapSource) SpecGrid() (SpecGrid, error) {
	if m.specGrid == nil {
		return SpecGrid{}, ErrNoSpecGrid
	}
	return *m.specGrid, nil
}

// compile-time interface conformance check
var _ DataSource = (*MapSource)(nil)
