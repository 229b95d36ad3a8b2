package astc

// hash52 is the hash function used for procedural partition assignment.
//
// The constant and shift schedule are fixed by the ASTC specification; a
// conformant decoder must reproduce them exactly.
func hash52(inp uint32) uint32 {
	inp ^= inp >> 15
	inp *= 0xEEDE0891
	inp ^= inp >> 5
	inp += inp << 16
	inp ^= inp >> 7
	inp ^= inp >> 3
	inp ^= inp << 6
	inp ^= inp >> 17
	return inp
}

// selectPartition selects the partition index for a single texel coordinate.
//
// Twelve 4-bit fields of the seed hash are squared, downshifted by a
// seed-dependent schedule and combined into four linear forms over the texel
// coordinate; the largest form wins. Blocks under 32 texels are evaluated at
// doubled coordinates so the patterns scale down sensibly.
func selectPartition(seed, x, y, z, partitionCount int, smallBlock bool) uint8 {
	if smallBlock {
		x <<= 1
		y <<= 1
		z <<= 1
	}

	seed += (partitionCount - 1) * 1024
	rnum := hash52(uint32(seed))

	s := [12]uint8{
		uint8(rnum & 0xF),
		uint8((rnum >> 4) & 0xF),
		uint8((rnum >> 8) & 0xF),
		uint8((rnum >> 12) & 0xF),
		uint8((rnum >> 16) & 0xF),
		uint8((rnum >> 20) & 0xF),
		uint8((rnum >> 24) & 0xF),
		uint8((rnum >> 28) & 0xF),
		uint8((rnum >> 18) & 0xF),
		uint8((rnum >> 22) & 0xF),
		uint8((rnum >> 26) & 0xF),
		uint8(((rnum >> 30) | (rnum << 2)) & 0xF),
	}
	for i := range s {
		s[i] *= s[i]
	}

	var sh1, sh2 int
	if (seed & 1) != 0 {
		if (seed & 2) != 0 {
			sh1 = 4
		} else {
			sh1 = 5
		}
		if partitionCount == 3 {
			sh2 = 6
		} else {
			sh2 = 5
		}
	} else {
		if partitionCount == 3 {
			sh1 = 6
		} else {
			sh1 = 5
		}
		if (seed & 2) != 0 {
			sh2 = 4
		} else {
			sh2 = 5
		}
	}
	sh3 := sh2
	if (seed & 0x10) != 0 {
		sh3 = sh1
	}

	for i := 0; i < 8; i += 2 {
		s[i] >>= uint8(sh1)
		s[i+1] >>= uint8(sh2)
	}
	for i := 8; i < 12; i++ {
		s[i] >>= uint8(sh3)
	}

	a := int(s[0])*x + int(s[1])*y + int(s[10])*z + int(rnum>>14)
	b := int(s[2])*x + int(s[3])*y + int(s[11])*z + int(rnum>>10)
	c := int(s[4])*x + int(s[5])*y + int(s[8])*z + int(rnum>>6)
	d := int(s[6])*x + int(s[7])*y + int(s[9])*z + int(rnum>>2)

	a &= 0x3F
	b &= 0x3F
	c &= 0x3F
	d &= 0x3F

	if partitionCount <= 3 {
		d = 0
	}
	if partitionCount <= 2 {
		c = 0
	}
	if partitionCount <= 1 {
		b = 0
	}

	switch {
	case a >= b && a >= c && a >= d:
		return 0
	case b >= c && b >= d:
		return 1
	case c >= d:
		return 2
	default:
		return 3
	}
}
