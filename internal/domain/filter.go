package domain

// FilterSet holds the three values each record attribute is matched against.
// An empty value is treated as absent.
type FilterSet struct {
	A string
	B string
	C string
}

// NewFilterSet builds a FilterSet from the three filter values.
func NewFilterSet(a, b, c string) FilterSet {
	return FilterSet{A: a, B: b, C: c}
}

// Missing reports whether any filter value is absent.
func (f FilterSet) Missing() bool {
	return f.A == "" || f.B == "" || f.C == ""
}

// Contains reports whether v equals one of the filter values.
func (f FilterSet) Contains(v string) bool {
	return v == f.A || v == f.B || v == f.C
}

// Keep reports whether r survives the filter. Each attribute is matched
// against the whole set on its own, so {A,A} passes for filters (A,B,C).
func (f FilterSet) Keep(r *Record) bool {
	if !r.Complete() {
		return false
	}
	return f.Contains(*r.PropertyOne) && f.Contains(*r.PropertyTwo)
}

// Apply returns the records that survive the filter, preserving order.
// The result is never nil.
func (f FilterSet) Apply(records []*Record) []*Record {
	kept := make([]*Record, 0, len(records))
	for _, r := range records {
		if f.Keep(r) {
			kept = append(kept, r)
		}
	}
	return kept
}
