package frame

// Distinct returns the first occurrence of every distinct row, considering only the named columns
// when any are given
func (t *Table) Distinct(subset ...string) (*Table, error) {
	keys := t.cols
	if len(subset) > 0 {
		keys = make([]*Series, len(subset))
		for i, name := range subset {
			c, err := t.Column(name)
			if err != nil {
				return nil, err
			}
			keys[i] = c
		}
	}
	ki := newKeyIndex(keys)
	for r := 0; r < t.nrows; r++ {
		ki.add(r)
	}
	return t.Take(ki.first), nil
}
