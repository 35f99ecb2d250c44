package menu

import (
	"context"

	"serialmenu/x/strconvx"
)

// Number is the set of types ReadNumber can produce.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ReadNumber blocks until a number has been typed and returns it.
//
// Grammar: one leading line feed is skipped, an optional '-', then digits
// with at most one '.'. The first other byte ends the number and is
// discarded. Digits after the point are accumulated into the value, which is
// divided by 10^n at the end, so integer T truncates ("-12.5" gives -12).
// When prompt is non-empty it is written first and the parsed value is
// echoed on its own line.
func ReadNumber[T Number](ctx context.Context, e *Engine, prompt string) (T, error) {
	var value, decimals T
	negative := false

	if prompt != "" {
		e.Print(prompt)
	}

	c, err := e.ReadChar(ctx)
	if err != nil {
		return 0, err
	}
	if c == '\n' {
		if c, err = e.ReadChar(ctx); err != nil {
			return 0, err
		}
	}
	if c == '-' {
		negative = true
		if c, err = e.ReadChar(ctx); err != nil {
			return 0, err
		}
	}

	point := false
	for isDigit(c) || (c == '.' && !point) {
		if isDigit(c) {
			value = value*10 + T(c-'0')
			if point {
				decimals *= 10
			}
		} else {
			point = true
			decimals = 1
		}
		if c, err = e.ReadChar(ctx); err != nil {
			return 0, err
		}
	}

	if negative {
		value = -value
	}
	if decimals != 0 {
		value /= decimals
	}
	if prompt != "" {
		e.Println(formatNumber(value))
	}
	return value, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// formatNumber renders v the way the console echoes it: integers in
// decimal, fractional types with two decimals.
func formatNumber[T Number](v T) string {
	var zero T
	one := T(1)
	switch {
	case one/2 != zero:
		return strconvx.FormatFloat(float64(v), 'f', 2, 64)
	case zero-one < zero:
		return strconvx.FormatInt(int64(v), 10)
	default:
		return strconvx.FormatUint(uint64(v), 10)
	}
}
