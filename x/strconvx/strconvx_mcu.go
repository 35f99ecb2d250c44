//go:build rp2040

package strconvx

// Formatting subset used by the menu echo path. Bases 2..36.
// FormatFloat only renders fixed-point ('f'); other verbs fall back to it.

func Itoa(i int) string { return FormatInt(int64(i), 10) }

func FormatInt(i int64, base int) string {
	if base < 2 || base > 36 {
		base = 10
	}
	if i < 0 {
		return "-" + formatUint(uint64(-i), base)
	}
	return formatUint(uint64(i), base)
}

func FormatUint(u uint64, base int) string {
	if base < 2 || base > 36 {
		base = 10
	}
	return formatUint(u, base)
}

func formatUint(u uint64, base int) string {
	if u == 0 {
		return "0"
	}
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	var buf [64]byte
	i := len(buf)
	b := uint64(base)
	for u > 0 {
		i--
		buf[i] = digits[u%b]
		u /= b
	}
	return string(buf[i:])
}

func FormatFloat(f float64, _ byte, prec, _ int) string {
	if prec < 0 {
		prec = 6
	}
	neg := f < 0
	if neg {
		f = -f
	}
	pow := uint64(1)
	for i := 0; i < prec; i++ {
		pow *= 10
	}
	// Round once on the scaled value so carries reach the integer part.
	scaled := uint64(f*float64(pow) + 0.5)
	ints := formatUint(scaled/pow, 10)
	out := ints
	if prec > 0 {
		fs := formatUint(scaled%pow, 10)
		pad := make([]byte, 0, prec)
		for i := len(fs); i < prec; i++ {
			pad = append(pad, '0')
		}
		out = ints + "." + string(pad) + fs
	}
	if neg && scaled != 0 {
		return "-" + out
	}
	return out
}
