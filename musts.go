package mpg

import "fmt"

// MustAdd is like [Buffer.Add] but panics if computing error.
func (b Buffer) MustAdd(c Buffer) Buffer {
	d, err := b.Add(c)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", c, err))
	}
	return d
}

// MustSub is like [Buffer.Sub] but panics if computing error.
func (b Buffer) MustSub(c Buffer) Buffer {
	d, err := b.Sub(c)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", c, err))
	}
	return d
}

// MustMul is like [Buffer.Mul] but panics if computing error.
func (b Buffer) MustMul(c Buffer) Buffer {
	d, err := b.Mul(c)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", c, err))
	}
	return d
}

// MustQuo is like [Buffer.Quo] but panics if computing error.
func (b Buffer) MustQuo(c Buffer) Buffer {
	d, err := b.Quo(c)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", c, err))
	}
	return d
}
