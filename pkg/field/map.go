package field

// Map is an ordered collection of named field states. Iteration order
// is insertion order, which keeps generated SQL deterministic.
type Map struct {
	cols []string
	vals map[string]State
}

func NewMap() *Map {
	return &Map{vals: make(map[string]State)}
}

// Put records a field under the given column name. Re-putting an
// existing column overwrites its state but keeps the original position.
func (m *Map) Put(col string, v State) *Map {
	if _, ok := m.vals[col]; !ok {
		m.cols = append(m.cols, col)
	}
	m.vals[col] = v
	return m
}

// Get returns the state stored under col.
func (m *Map) Get(col string) (State, bool) {
	v, ok := m.vals[col]
	return v, ok
}

// Columns returns all column names in insertion order, including Unset
// entries.
func (m *Map) Columns() []string {
	out := make([]string, len(m.cols))
	copy(out, m.cols)
	return out
}

// Bound returns the columns that take part in the operation together
// with their bindable parameter values, in insertion order. Unset
// entries are dropped; Null entries yield a nil argument, which the
// driver binds as SQL NULL.
func (m *Map) Bound() (cols []string, args []interface{}) {
	for _, c := range m.cols {
		v := m.vals[c]
		if !v.Present() {
			continue
		}
		cols = append(cols, c)
		args = append(args, v.Raw())
	}
	return cols, args
}

// Empty reports whether no field takes part in the operation, i.e.
// every entry is Unset or the map holds no entries at all.
func (m *Map) Empty() bool {
	for _, c := range m.cols {
		if m.vals[c].Present() {
			return false
		}
	}
	return true
}
