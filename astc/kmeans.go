package astc

import "math/bits"

// rngState is a 128-bit xoroshiro128+ generator state.
//
// The generator is only used to pick clustering sample texels; its output
// never reaches the bitstream, so the engine just has to be deterministic.
type rngState [2]uint64

func rngInit(state *rngState) {
	state[0] = 0xfaf9e171cea1ec6b
	state[1] = 0xf1b318cc06af5d71
}

func rngNext(state *rngState) uint64 {
	s0 := state[0]
	s1 := state[1]
	res := s0 + s1

	s1 ^= s0
	state[0] = bits.RotateLeft64(s0, 24) ^ s1 ^ (s1 << 16)
	state[1] = bits.RotateLeft64(s1, 37)
	return res
}

// assignKmeansTexels picks the texel subset used for clustering and for the
// partition coverage bitmaps. Small blocks use every texel; larger blocks
// draw maxKMeansTexels distinct indices from the generator, retrying on
// repeats.
//
// bsd.texelCount must be populated before calling.
func assignKmeansTexels(bsd *BlockSizeDescriptor) {
	if bsd.texelCount <= maxKMeansTexels {
		for i := 0; i < bsd.texelCount; i++ {
			bsd.kmeansTexels[i] = i
		}

		bsd.kmeansTexelCount = bsd.texelCount
		return
	}

	var state rngState
	rngInit(&state)

	var seen [blockMaxTexels]bool

	elementsSet := 0
	for elementsSet < maxKMeansTexels {
		texel := int(rngNext(&state) % uint64(bsd.texelCount))
		if !seen[texel] {
			bsd.kmeansTexels[elementsSet] = texel
			elementsSet++
			seen[texel] = true
		}
	}

	bsd.kmeansTexelCount = maxKMeansTexels
}
