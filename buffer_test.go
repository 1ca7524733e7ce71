package mpg

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

// mustParseBuffer encodes a decimal literal into a buffer of the given size.
func mustParseBuffer(w, f int, s string) Buffer {
	return MustEncode(MustParseDigits(s), Size{Whole: w, Frac: f})
}

func TestBuffer_ZeroValue(t *testing.T) {
	got := Buffer{}
	if got.Size().Len() != 0 {
		t.Errorf("Buffer{}.Size() = %v, want 0.0", got.Size())
	}
	if got.String() != "0" {
		t.Errorf("Buffer{}.String() = %q, want %q", got.String(), "0")
	}
}

func TestBuffer_Interfaces(t *testing.T) {
	var i any = Buffer{}
	_, ok := i.(fmt.Stringer)
	if !ok {
		t.Errorf("%T does not implement fmt.Stringer", i)
	}
	_, ok = i.(fmt.Formatter)
	if !ok {
		t.Errorf("%T does not implement fmt.Formatter", i)
	}
}

func TestNewBuffer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s      Size
			digits []int8
			want   string
		}{
			{Size{Whole: 2, Frac: 2}, []int8{0, 0, 5, 0}, "0.05"},
			{Size{Whole: 2, Frac: 2}, []int8{0, 0, 0, 0}, "0"},
			{Size{Whole: 1, Frac: 0}, []int8{9}, "9"},
			{Size{Whole: 0, Frac: 2}, []int8{0, 5}, "0.05"},
			{Size{Whole: 5, Frac: 7}, []int8{0, 0, 1, 2, 3, 4, 5, 6, 0, 0, 0, 0}, "123.456"},
		}
		for _, tt := range tests {
			got, err := NewBuffer(tt.s, tt.digits...)
			if err != nil {
				t.Errorf("NewBuffer(%v, %v) failed: %v", tt.s, tt.digits, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("NewBuffer(%v, %v) = %q, want %q", tt.s, tt.digits, got, tt.want)
			}
			if !slices.Equal(got.Digits(), tt.digits) {
				t.Errorf("NewBuffer(%v, %v).Digits() = %v", tt.s, tt.digits, got.Digits())
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s      Size
			digits []int8
		}{
			"size 1":   {Size{Whole: 0, Frac: 0}, nil},
			"size 2":   {Size{Whole: -1, Frac: 2}, []int8{0}},
			"length 1": {Size{Whole: 2, Frac: 2}, []int8{0, 0, 5}},
			"length 2": {Size{Whole: 1, Frac: 0}, []int8{0, 5}},
			"digit 1":  {Size{Whole: 2, Frac: 0}, []int8{1, 10}},
			"digit 2":  {Size{Whole: 2, Frac: 0}, []int8{-1, 0}},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewBuffer(tt.s, tt.digits...)
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("NewBuffer(%v, %v) failed with %v, want %v", tt.s, tt.digits, err, ErrInvalidInput)
				}
			})
		}
	})
}

func TestMustNewBuffer(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewBuffer(Size{1, 0}, 10) did not panic")
			}
		}()
		MustNewBuffer(Size{Whole: 1, Frac: 0}, 10)
	})
}

func TestEncode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d      string
			s      Size
			digits []int8
		}{
			{"123.456", Size{Whole: 5, Frac: 7}, []int8{0, 0, 1, 2, 3, 4, 5, 6, 0, 0, 0, 0}},
			{"5", Size{Whole: 2, Frac: 1}, []int8{0, 5, 0}},
			{".25", Size{Whole: 1, Frac: 2}, []int8{0, 2, 5}},
			{"1.2345", Size{Whole: 1, Frac: 2}, []int8{1, 2, 3}},
			{"1.9999", Size{Whole: 1, Frac: 0}, []int8{1}},
			{"378.5411784", Size{Whole: 6, Frac: 3}, []int8{0, 0, 0, 3, 7, 8, 5, 4, 1}},
			{"007", Size{Whole: 3, Frac: 0}, []int8{0, 0, 7}},
		}
		for _, tt := range tests {
			d := MustParseDigits(tt.d)
			got, err := Encode(d, tt.s)
			if err != nil {
				t.Errorf("Encode(%v, %v) failed: %v", d, tt.s, err)
				continue
			}
			if got.Size() != tt.s {
				t.Errorf("Encode(%v, %v).Size() = %v", d, tt.s, got.Size())
			}
			if !slices.Equal(got.Digits(), tt.digits) {
				t.Errorf("Encode(%v, %v).Digits() = %v, want %v", d, tt.s, got.Digits(), tt.digits)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			d    string
			s    Size
			want error
		}{
			"overflow 1": {"1234", Size{Whole: 3, Frac: 2}, ErrPrecisionOverflow},
			"overflow 2": {"0.5", Size{Whole: 0, Frac: 2}, ErrPrecisionOverflow},
			"size 1":     {"1", Size{Whole: 0, Frac: 0}, ErrInvalidInput},
			"size 2":     {"1", Size{Whole: 1, Frac: -1}, ErrInvalidInput},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				d := MustParseDigits(tt.d)
				_, err := Encode(d, tt.s)
				if !errors.Is(err, tt.want) {
					t.Errorf("Encode(%v, %v) failed with %v, want %v", d, tt.s, err, tt.want)
				}
			})
		}
	})
}

func TestBuffer_String(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		tests := []struct {
			s      Size
			digits []int8
			want   string
		}{
			{Size{Whole: 2, Frac: 2}, []int8{0, 0, 0, 0}, "0"},
			{Size{Whole: 2, Frac: 2}, []int8{0, 0, 5, 0}, "0.05"},
			{Size{Whole: 3, Frac: 2}, []int8{0, 1, 2, 5, 0}, "12.5"},
			{Size{Whole: 3, Frac: 0}, []int8{1, 0, 0}, "100"},
			{Size{Whole: 2, Frac: 3}, []int8{1, 0, 0, 0, 1}, "10.001"},
			{Size{Whole: 1, Frac: 0}, []int8{0}, "0"},
		}
		for _, tt := range tests {
			b := MustNewBuffer(tt.s, tt.digits...)
			if got := b.String(); got != tt.want {
				t.Errorf("MustNewBuffer(%v, %v).String() = %q, want %q", tt.s, tt.digits, got, tt.want)
			}
		}
	})

	t.Run("round trip", func(t *testing.T) {
		tests := []struct {
			d    string
			s    Size
			want string
		}{
			{"007.100", Size{Whole: 3, Frac: 3}, "7.1"},
			{"0.000", Size{Whole: 1, Frac: 3}, "0"},
			{"123.456", Size{Whole: 5, Frac: 4}, "123.456"},
			{".25", Size{Whole: 1, Frac: 2}, "0.25"},
			{"5.", Size{Whole: 1, Frac: 2}, "5"},
			{"99999.9999", Size{Whole: 5, Frac: 4}, "99999.9999"},
			{"235.2145833", Size{Whole: 6, Frac: 7}, "235.2145833"},
		}
		for _, tt := range tests {
			b := MustEncode(MustParseDigits(tt.d), tt.s)
			if got := b.String(); got != tt.want {
				t.Errorf("Encode(%q, %v).String() = %q, want %q", tt.d, tt.s, got, tt.want)
			}
		}
	})
}

func TestBuffer_Format(t *testing.T) {
	tests := []struct {
		d, format, want string
	}{
		{"12.5", "%v", "12.5"},
		{"12.5", "%s", "12.5"},
		{"12.5", "%q", "\"12.5\""},
		{"12.5", "%8v", "    12.5"},
		{"12.5", "%-8v|", "12.5    |"},
		{"12.5", "%d", "%!d(mpg.Buffer=12.5)"},
	}
	for _, tt := range tests {
		b := mustParseBuffer(3, 2, tt.d)
		if got := fmt.Sprintf(tt.format, b); got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, b, got, tt.want)
		}
	}
}

func TestBuffer_Cmp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, e string
			want int
		}{
			{"0", "0", 0},
			{"1", "0", 1},
			{"0", "1", -1},
			{"10.5", "9.99", 1},
			{"9.99", "10.5", -1},
			{"12.34", "12.34", 0},
			{"0.01", "0.1", -1},
		}
		for _, tt := range tests {
			b := mustParseBuffer(3, 2, tt.d)
			c := mustParseBuffer(3, 2, tt.e)
			got, err := b.Cmp(c)
			if err != nil {
				t.Errorf("%q.Cmp(%q) failed: %v", b, c, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.Cmp(%q) = %v, want %v", b, c, got, tt.want)
			}
			if eq := b.Equal(c); eq != (tt.want == 0) {
				t.Errorf("%q.Equal(%q) = %v, want %v", b, c, eq, tt.want == 0)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		b := mustParseBuffer(3, 2, "1")
		c := mustParseBuffer(2, 2, "1")
		_, err := b.Cmp(c)
		if !errors.Is(err, ErrSizeMismatch) {
			t.Errorf("%q.Cmp(%q) failed with %v, want %v", b, c, err, ErrSizeMismatch)
		}
		if b.Equal(c) {
			t.Errorf("%q.Equal(%q) = true, want false", b, c)
		}
	})
}

func TestBuffer_IsZero(t *testing.T) {
	tests := []struct {
		d    string
		want bool
	}{
		{"0", true},
		{"0.00", true},
		{"0.01", false},
		{"100", false},
	}
	for _, tt := range tests {
		b := mustParseBuffer(3, 2, tt.d)
		if got := b.IsZero(); got != tt.want {
			t.Errorf("%q.IsZero() = %v, want %v", b, got, tt.want)
		}
	}
}
