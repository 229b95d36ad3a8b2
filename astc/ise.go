package astc

// btqCount describes the element packing for an integer sequence
// quantization mode: the number of plain bits per value, plus whether a
// trit or quint component is interleaved into the sequence.
type btqCount struct {
	bits   uint8
	trits  bool
	quints bool
}

var btqCounts = [...]btqCount{
	{bits: 1},               // quant2
	{bits: 0, trits: true},  // quant3
	{bits: 2},               // quant4
	{bits: 0, quints: true}, // quant5
	{bits: 1, trits: true},  // quant6
	{bits: 3},               // quant8
	{bits: 1, quints: true}, // quant10
	{bits: 2, trits: true},  // quant12
	{bits: 4},               // quant16
	{bits: 2, quints: true}, // quant20
	{bits: 3, trits: true},  // quant24
	{bits: 5},               // quant32
	{bits: 3, quints: true}, // quant40
	{bits: 4, trits: true},  // quant48
	{bits: 6},               // quant64
	{bits: 4, quints: true}, // quant80
	{bits: 5, trits: true},  // quant96
	{bits: 7},               // quant128
	{bits: 5, quints: true}, // quant160
	{bits: 6, trits: true},  // quant192
	{bits: 8},               // quant256
}

// iseSize stores the bit cost of one ISE value as scale/divisor, with the
// divisor encoded as ((divisor << 1) + 1) to keep the table in bytes.
// Trit-bearing modes cost b + 8/5 bits per value and quint-bearing modes
// b + 7/3, rounded up over the whole sequence.
type iseSize struct {
	scale   uint8
	divisor uint8
}

var iseSizes = [...]iseSize{
	{scale: 1, divisor: 0},  // quant2
	{scale: 8, divisor: 2},  // quant3
	{scale: 2, divisor: 0},  // quant4
	{scale: 7, divisor: 1},  // quant5
	{scale: 13, divisor: 2}, // quant6
	{scale: 3, divisor: 0},  // quant8
	{scale: 10, divisor: 1}, // quant10
	{scale: 18, divisor: 2}, // quant12
	{scale: 4, divisor: 0},  // quant16
	{scale: 13, divisor: 1}, // quant20
	{scale: 23, divisor: 2}, // quant24
	{scale: 5, divisor: 0},  // quant32
	{scale: 16, divisor: 1}, // quant40
	{scale: 28, divisor: 2}, // quant48
	{scale: 6, divisor: 0},  // quant64
	{scale: 19, divisor: 1}, // quant80
	{scale: 33, divisor: 2}, // quant96
	{scale: 7, divisor: 0},  // quant128
	{scale: 22, divisor: 1}, // quant160
	{scale: 38, divisor: 2}, // quant192
	{scale: 8, divisor: 0},  // quant256
}

// iseSequenceBitCount returns the number of bits needed to encode charCount
// values at quantization level q. Out-of-range levels return an impossibly
// large count so callers reject them against the block bit budget.
func iseSequenceBitCount(charCount int, q quantMethod) int {
	if int(q) < 0 || int(q) >= len(iseSizes) {
		return 1024
	}
	e := iseSizes[q]
	divisor := int((e.divisor << 1) + 1)
	return (int(e.scale)*charCount + divisor - 1) / divisor
}
