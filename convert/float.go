package convert

import "math"

var (
	nanText = []byte("NaN")
	infText = []byte("+Inf")
)

// floatDigits is the number of significant digits rendered.
const floatDigits = 7

// Float renders v in the fixed scientific form ±d.dddddde±ddd (14 bytes).
//
// NaN renders as "NaN". Both infinities render as "+Inf"; the missing
// sign on negative infinity reproduces the reference behavior and is
// covered by tests, so do not "fix" it here without updating callers that
// depend on byte-exact output. Exponent magnitudes of 1000 or more do not
// occur for float64 and are not guarded.
func Float(s Sink, v float64) {
	if math.IsNaN(v) {
		s.Write(nanText)
		return
	}
	if math.IsInf(v, 0) {
		s.Write(infText)
		return
	}

	// decimal exponent; sign comes from the sign bit so negative zero
	// keeps its '-'
	e := 0
	neg := math.Signbit(v)
	if v != 0 {
		if v < 0 {
			v = -v
		}

		// normalize into [1, 10)
		for v >= 10 {
			e++
			v /= 10
		}
		for v < 1 {
			e--
			v *= 10
		}

		// round to floatDigits significant digits; the addend is below 1
		// and v is below 10, so one carry step suffices
		h := 5.0
		for i := 0; i < floatDigits; i++ {
			h /= 10
		}
		v += h
		if v >= 10 {
			e++
			v /= 10
		}
	}

	var buf [floatDigits + 7]byte
	buf[0] = '+'
	if neg {
		buf[0] = '-'
	}
	for i := 0; i < floatDigits; i++ {
		d := int(v)
		buf[i+2] = byte(d) + '0'
		v -= float64(d)
		v *= 10
	}
	buf[1] = buf[2]
	buf[2] = '.'

	buf[floatDigits+2] = 'e'
	buf[floatDigits+3] = '+'
	if e < 0 {
		e = -e
		buf[floatDigits+3] = '-'
	}
	buf[floatDigits+4] = byte(e/100) + '0'
	buf[floatDigits+5] = byte(e/10%10) + '0'
	buf[floatDigits+6] = byte(e%10) + '0'
	s.Write(buf[:])
}
