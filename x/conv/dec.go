// Package conv holds allocation-free number/byte formatting used by the
// diagnostics path. No fmt/strconv so MCU builds stay lean.
package conv

// Utoa writes base-10 representation of n into buf and returns the used
// slice. buf should be length >= 20 for uint64.
func Utoa(buf []byte, n uint64) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
	} else {
		for n > 0 && i > 0 {
			i--
			buf[i] = byte('0' + (n % 10))
			n /= 10
		}
	}
	return buf[i:]
}

// Itoa writes base-10 representation of n into buf and returns the used
// slice. Negative numbers supported; buf should be length >= 20.
func Itoa(buf []byte, n int64) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	if n >= 0 {
		return Utoa(buf, uint64(n))
	}
	s := Utoa(buf[1:], uint64(-n))
	// Utoa wrote right-aligned into buf[1:]; the sign slot is free.
	i := len(buf) - len(s) - 1
	buf[i] = '-'
	return buf[i:]
}
