package spectral

// Codec converts a device's raw bus words and signed codes to the volt
// domain. The engine never hard-wires a device family; it calls whatever
// codec the configuration injects.
type Codec interface {
	// ToVolts converts a signed code to volts without reference scaling.
	// A positive-full-scale code maps to 1.0, so spectra derived from this
	// conversion read directly in dBFS.
	ToVolts(code int32) float64
	// ToVoltsRef converts a signed code to volts with respect to the
	// reference voltage.
	ToVoltsRef(code int32) float64
	// ToStraightBinary converts a raw bus word to a signed
	// straight-binary code.
	ToStraightBinary(raw uint32) int32
}

// OffsetBinaryCodec scales codes of a converter with offset-binary output
// coding. Bits must be between 2 and 31.
type OffsetBinaryCodec struct {
	Bits int
	VRef float64
}

// FullScale returns the code span 2^Bits.
func (c OffsetBinaryCodec) FullScale() int64 { return int64(1) << c.Bits }

// ZeroScale returns the mid-scale code 2^(Bits-1).
func (c OffsetBinaryCodec) ZeroScale() int32 { return int32(int64(1) << (c.Bits - 1)) }

// ToVolts converts a signed code to volts without reference scaling.
func (c OffsetBinaryCodec) ToVolts(code int32) float64 {
	return codeToVolts(code, c.FullScale())
}

// ToVoltsRef converts a signed code to volts with respect to VRef.
func (c OffsetBinaryCodec) ToVoltsRef(code int32) float64 {
	return codeToVoltsRef(code, c.FullScale(), c.VRef)
}

// ToStraightBinary rebases a raw offset-binary word around mid scale.
func (c OffsetBinaryCodec) ToStraightBinary(raw uint32) int32 {
	return int32(raw&uint32(c.FullScale()-1)) - c.ZeroScale()
}

// TwosComplementCodec scales codes of a converter with two's-complement
// output coding. Bits must be between 2 and 32.
type TwosComplementCodec struct {
	Bits int
	VRef float64
}

// FullScale returns the code span 2^Bits.
func (c TwosComplementCodec) FullScale() int64 { return int64(1) << c.Bits }

// ZeroScale returns 0: two's-complement codes are already bipolar, so LSB
// amplitudes are reported without rebasing.
func (c TwosComplementCodec) ZeroScale() int32 { return 0 }

// ToVolts converts a signed code to volts without reference scaling.
func (c TwosComplementCodec) ToVolts(code int32) float64 {
	return codeToVolts(code, c.FullScale())
}

// ToVoltsRef converts a signed code to volts with respect to VRef.
func (c TwosComplementCodec) ToVoltsRef(code int32) float64 {
	return codeToVoltsRef(code, c.FullScale(), c.VRef)
}

// ToStraightBinary sign-extends a raw two's-complement word.
func (c TwosComplementCodec) ToStraightBinary(raw uint32) int32 {
	shift := uint(32 - c.Bits)
	return int32(raw<<shift) >> shift
}

func codeToVolts(code int32, fullScale int64) float64 {
	return 2 * float64(code) / float64(fullScale)
}

func codeToVoltsRef(code int32, fullScale int64, vref float64) float64 {
	return 2 * float64(code) * vref / float64(fullScale)
}
