package domain

import "fmt"

// Record is the two-attribute value object handed from a lookup to a persister.
// A nil attribute mirrors a null upstream value.
type Record struct {
	PropertyOne *string `json:"propertyOne"`
	PropertyTwo *string `json:"propertyTwo"`
}

// NewRecord builds a record with both attributes set.
func NewRecord(one, two string) *Record {
	return &Record{PropertyOne: StringPtr(one), PropertyTwo: StringPtr(two)}
}

// StringPtr returns a pointer to a copy of s.
func StringPtr(s string) *string {
	return &s
}

// Complete reports whether the record is non-nil and carries both attributes.
func (r *Record) Complete() bool {
	return r != nil && r.PropertyOne != nil && r.PropertyTwo != nil
}

// Equal compares two records by value. Two nil records are equal.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == nil && other == nil
	}
	return equalPtr(r.PropertyOne, other.PropertyOne) && equalPtr(r.PropertyTwo, other.PropertyTwo)
}

func (r *Record) String() string {
	if r == nil {
		return "<nil>"
	}
	return fmt.Sprintf("{%s,%s}", display(r.PropertyOne), display(r.PropertyTwo))
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func display(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}
