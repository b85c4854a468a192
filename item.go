package kbloom

import "fmt"

// AddItem adds an arbitrary value to the filter using the wide hash path:
// the item is serialized canonically, hashed once with the wide hash, and
// the digest halves are expanded into k positions.
//
// If item cannot be serialized, a *hashing.SerializationError is returned
// and the filter is not modified.
//
// Items added with AddItem must be checked with TestItem; the fast path
// probes different positions for the same value.
func (f *Filter) AddItem(item any) error {
	var buf [stackIndexes]uint64
	idx, err := f.itemIndexes(buf[:0], item)
	if err != nil {
		return err
	}
	if f.cfg.observer != nil {
		f.cfg.observer.OnInsert(fmt.Sprint(item))
	}
	f.setAll(idx)
	return nil
}

// TestItem checks if a value added with AddItem might be in the filter.
func (f *Filter) TestItem(item any) (bool, error) {
	var buf [stackIndexes]uint64
	idx, err := f.itemIndexes(buf[:0], item)
	if err != nil {
		return false, err
	}
	found := f.testAll(idx)
	if f.cfg.observer != nil {
		f.cfg.observer.OnLookup(fmt.Sprint(item), found)
	}
	return found, nil
}
