package vector

import (
	"strconv"
	"strings"
)

// Allowed element range, inclusive.
const (
	MinValue = -100
	MaxValue = 100
)

// MaxLength is the largest number of elements a vector may hold.
const MaxLength = 1 << 20

// Vector is an owned sequence of integers in [MinValue, MaxValue].
//
// The zero value is an empty vector ready for use. Vectors never share
// backing storage; every derived vector is freshly allocated.
type Vector struct {
	elems []int
}

// New creates a vector of length zero-valued elements.
// A length of 0 is valid; a length outside [0, MaxLength] returns
// ErrInvalidLength.
func New(length int) (*Vector, error) {
	if length < 0 || length > MaxLength {
		return nil, NewInvalidLengthError(length)
	}
	return &Vector{elems: make([]int, length)}, nil
}

// FromValues creates a vector holding values in order.
// Fails with ErrInvalidValue on the first value outside the range.
func FromValues(values ...int) (*Vector, error) {
	if len(values) > MaxLength {
		return nil, NewInvalidLengthError(len(values))
	}
	elems := make([]int, len(values))
	for i, val := range values {
		if err := Validate(val); err != nil {
			err.Details["index"] = strconv.Itoa(i)
			return nil, err
		}
		elems[i] = val
	}
	return &Vector{elems: elems}, nil
}

// Validate returns ErrInvalidValue when value is outside [MinValue, MaxValue].
func Validate(value int) *Error {
	if value < MinValue || value > MaxValue {
		return NewInvalidValueError(value)
	}
	return nil
}

// Clamp saturates x to [MinValue, MaxValue].
func Clamp(x int) int {
	return min(max(x, MinValue), MaxValue)
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}
	return len(v.elems)
}

// Get returns the element at index.
func (v *Vector) Get(index int) (int, error) {
	if err := v.checkIndex(index); err != nil {
		return 0, err
	}
	return v.elems[index], nil
}

// Set replaces the element at index with value.
// The index is checked before the value; on any error v is unchanged.
func (v *Vector) Set(index, value int) error {
	if err := v.checkIndex(index); err != nil {
		return err
	}
	if err := Validate(value); err != nil {
		return err
	}
	v.elems[index] = value
	return nil
}

// Append grows v by one element holding value.
// The backing storage is reallocated to exactly the new length.
// A full vector (MaxLength elements) returns ErrInvalidLength.
func (v *Vector) Append(value int) error {
	if err := Validate(value); err != nil {
		return err
	}
	if len(v.elems) >= MaxLength {
		return NewInvalidLengthError(len(v.elems) + 1)
	}
	grown := make([]int, len(v.elems)+1)
	copy(grown, v.elems)
	grown[len(v.elems)] = value
	v.elems = grown
	return nil
}

// Add returns the saturating element-wise sum of v and other.
// A nil other is treated as empty.
func (v *Vector) Add(other *Vector) *Vector {
	return v.combine(other, func(a, b int) int { return a + b })
}

// Subtract returns the saturating element-wise difference v - other.
// A nil other is treated as empty.
func (v *Vector) Subtract(other *Vector) *Vector {
	return v.combine(other, func(a, b int) int { return a - b })
}

func (v *Vector) combine(other *Vector, op func(a, b int) int) *Vector {
	n := max(v.Len(), other.Len())
	out := make([]int, n)
	for i := range out {
		out[i] = Clamp(op(v.at(i), other.at(i)))
	}
	return &Vector{elems: out}
}

// at returns the element at i, or 0 past the end.
func (v *Vector) at(i int) int {
	if i < v.Len() {
		return v.elems[i]
	}
	return 0
}

// CopyFrom replaces the contents of v with a deep copy of other.
// Copying a vector onto itself is a no-op.
func (v *Vector) CopyFrom(other *Vector) {
	if v == other {
		return
	}
	v.elems = other.Values()
}

// Clone returns a deep copy of v.
func (v *Vector) Clone() *Vector {
	return &Vector{elems: v.Values()}
}

// Values returns a copy of the elements.
func (v *Vector) Values() []int {
	out := make([]int, v.Len())
	if v != nil {
		copy(out, v.elems)
	}
	return out
}

// Equal reports whether v and other hold the same elements in the same order.
func (v *Vector) Equal(other *Vector) bool {
	if v.Len() != other.Len() {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		if v.elems[i] != other.elems[i] {
			return false
		}
	}
	return true
}

// String renders v as "[1, 2, 3]".
func (v *Vector) String() string {
	return "[" + v.Join(", ") + "]"
}

// Join renders the elements separated by sep.
func (v *Vector) Join(sep string) string {
	parts := make([]string, v.Len())
	for i := range parts {
		parts[i] = strconv.Itoa(v.elems[i])
	}
	return strings.Join(parts, sep)
}

func (v *Vector) checkIndex(index int) error {
	if index < 0 || index >= v.Len() {
		return NewOutOfRangeError(index, v.Len())
	}
	return nil
}
