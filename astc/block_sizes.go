package astc

// constructDTEntry2D allocates and registers one decimation table entry for
// a 2D weight grid, returning its index in the compacted table array.
//
// Ported from construct_dt_entry_2d() in Source/astcenc_block_sizes.cpp.
func constructDTEntry2D(xTexels, yTexels, xWeights, yWeights int, bsd *BlockSizeDescriptor) int {
	dmIndex := bsd.decimationModeCount
	weightCount := xWeights * yWeights

	try2Planes := 2*weightCount <= blockMaxWeights

	di := new(decimationInfo)
	initDecimationInfo2D(xTexels, yTexels, xWeights, yWeights, di)

	maxprec1Plane := -1
	maxprec2Planes := -1
	for i := 0; i < 12; i++ {
		bits1Plane := iseSequenceBitCount(weightCount, quantMethod(i))
		if bits1Plane >= blockMinWeightBits && bits1Plane <= blockMaxWeightBits {
			maxprec1Plane = i
		}

		if try2Planes {
			bits2Planes := iseSequenceBitCount(2*weightCount, quantMethod(i))
			if bits2Planes >= blockMinWeightBits && bits2Planes <= blockMaxWeightBits {
				maxprec2Planes = i
			}
		}
	}

	bsd.decimationModes[dmIndex].maxprec1Plane = int8(maxprec1Plane)
	bsd.decimationModes[dmIndex].maxprec2Planes = int8(maxprec2Planes)

	// Not enabled until an accepted block mode references this grid.
	bsd.decimationModes[dmIndex].percentileHit = false
	bsd.decimationModes[dmIndex].percentileAlways = false

	bsd.decimationTables[dmIndex] = di

	bsd.decimationModeCount++
	return dmIndex
}

// constructBlockSizeDescriptor2D assembles the block modes and decimation
// tables for a 2D block footprint.
//
// Ported from construct_block_size_descriptor_2d() in
// Source/astcenc_block_sizes.cpp.
func constructBlockSizeDescriptor2D(xTexels, yTexels int, canOmitModes bool, modeCutoff float32, bsd *BlockSizeDescriptor) {
	// Remap table for packed decimation modes, keyed [Y*16 + X] with a max
	// extent of 12 per axis.
	const maxDMI = 12*16 + 12
	var decimationModeIndex [maxDMI]int

	bsd.xdim = xTexels
	bsd.ydim = yTexels
	bsd.zdim = 1
	bsd.texelCount = xTexels * yTexels
	bsd.decimationModeCount = 0

	for i := range decimationModeIndex {
		decimationModeIndex[i] = -1
	}

	percentiles := percentileTable2D(xTexels, yTexels)

	// Construct the list of block formats referencing the decimation tables.
	packedIdx := 0
	for i := 0; i < maxWeightModes; i++ {
		xWeights, yWeights, isDualPlane, quantMode, _, valid := decodeBlockMode2D(i)

		percentile := percentiles[i]
		selected := percentile <= modeCutoff || !canOmitModes

		// No sane compressor uses more weights per axis than the block has
		// texels; such modes are legal in the format but never emitted, so
		// they are dropped here along with invalid and unselected ones.
		if !valid || !selected || xWeights > xTexels || yWeights > yTexels {
			bsd.blockModePackedIndex[i] = -1
			continue
		}

		decimationMode := decimationModeIndex[yWeights*16+xWeights]
		if decimationMode == -1 {
			decimationMode = constructDTEntry2D(xTexels, yTexels, xWeights, yWeights, bsd)
			decimationModeIndex[yWeights*16+xWeights] = decimationMode
		}

		// Flatten the mode heuristic into precomputed flags.
		if percentile == 0.0 {
			bsd.blockModes[packedIdx].percentileAlways = true
			bsd.decimationModes[decimationMode].percentileAlways = true

			bsd.blockModes[packedIdx].percentileHit = true
			bsd.decimationModes[decimationMode].percentileHit = true
		} else if percentile <= modeCutoff {
			bsd.blockModes[packedIdx].percentileAlways = false

			bsd.blockModes[packedIdx].percentileHit = true
			bsd.decimationModes[decimationMode].percentileHit = true
		} else {
			bsd.blockModes[packedIdx].percentileAlways = false
			bsd.blockModes[packedIdx].percentileHit = false
		}

		bsd.blockModes[packedIdx].decimationMode = int16(decimationMode)
		bsd.blockModes[packedIdx].quantMode = quantMode
		bsd.blockModes[packedIdx].isDualPlane = isDualPlane
		bsd.blockModes[packedIdx].modeIndex = uint16(i)
		bsd.blockModePackedIndex[i] = int16(packedIdx)
		packedIdx++
	}

	bsd.blockModeCount = packedIdx

	// The tail of the array should never be read, but keep it inert.
	for i := bsd.decimationModeCount; i < maxDecimationModes; i++ {
		bsd.decimationModes[i].maxprec1Plane = -1
		bsd.decimationModes[i].maxprec2Planes = -1
		bsd.decimationModes[i].percentileHit = false
		bsd.decimationModes[i].percentileAlways = false
		bsd.decimationTables[i] = nil
	}

	assignKmeansTexels(bsd)
}

// constructBlockSizeDescriptor3D assembles the block modes and decimation
// tables for a 3D block footprint. There is no percentile table for 3D, so
// every legal mode is enabled all the time.
//
// Ported from construct_block_size_descriptor_3d() in
// Source/astcenc_block_sizes.cpp.
func constructBlockSizeDescriptor3D(xTexels, yTexels, zTexels int, bsd *BlockSizeDescriptor) {
	// Remap table for packed decimation modes, keyed [Z*64 + Y*8 + X] with a
	// max extent of 6 per axis.
	const maxDMI = 6*64 + 6*8 + 6
	var decimationModeIndex [maxDMI]int
	decimationModeCount := 0

	bsd.xdim = xTexels
	bsd.ydim = yTexels
	bsd.zdim = zTexels
	bsd.texelCount = xTexels * yTexels * zTexels

	for i := range decimationModeIndex {
		decimationModeIndex[i] = -1
	}

	// Gather all the infill grids usable with this block size.
	for xWeights := 2; xWeights <= xTexels; xWeights++ {
		for yWeights := 2; yWeights <= yTexels; yWeights++ {
			for zWeights := 2; zWeights <= zTexels; zWeights++ {
				weightCount := xWeights * yWeights * zWeights
				if weightCount > blockMaxWeights {
					continue
				}

				di := new(decimationInfo)
				decimationModeIndex[zWeights*64+yWeights*8+xWeights] = decimationModeCount
				initDecimationInfo3D(xTexels, yTexels, zTexels, xWeights, yWeights, zWeights, di)

				maxprec1Plane := -1
				maxprec2Planes := -1
				for i := 0; i < 12; i++ {
					bits1Plane := iseSequenceBitCount(weightCount, quantMethod(i))
					bits2Planes := iseSequenceBitCount(2*weightCount, quantMethod(i))

					if bits1Plane >= blockMinWeightBits && bits1Plane <= blockMaxWeightBits {
						maxprec1Plane = i
					}

					if bits2Planes >= blockMinWeightBits && bits2Planes <= blockMaxWeightBits {
						maxprec2Planes = i
					}
				}

				if 2*weightCount > blockMaxWeights {
					maxprec2Planes = -1
				}

				bsd.decimationModes[decimationModeCount].maxprec1Plane = int8(maxprec1Plane)
				bsd.decimationModes[decimationModeCount].maxprec2Planes = int8(maxprec2Planes)
				bsd.decimationModes[decimationModeCount].percentileHit = false
				bsd.decimationModes[decimationModeCount].percentileAlways = false
				bsd.decimationTables[decimationModeCount] = di
				decimationModeCount++
			}
		}
	}

	for i := decimationModeCount; i < maxDecimationModes; i++ {
		bsd.decimationModes[i].maxprec1Plane = -1
		bsd.decimationModes[i].maxprec2Planes = -1
		bsd.decimationModes[i].percentileHit = false
		bsd.decimationModes[i].percentileAlways = false
		bsd.decimationTables[i] = nil
	}

	bsd.decimationModeCount = decimationModeCount

	// Construct the list of block formats.
	packedIdx := 0
	for i := 0; i < maxWeightModes; i++ {
		xWeights, yWeights, zWeights, isDualPlane, quantMode, _, ok := decodeBlockMode3D(i)
		permitEncode := ok && xWeights <= xTexels && yWeights <= yTexels && zWeights <= zTexels

		bsd.blockModePackedIndex[i] = -1
		if !permitEncode {
			continue
		}

		decimationMode := decimationModeIndex[zWeights*64+yWeights*8+xWeights]
		bsd.blockModes[packedIdx].decimationMode = int16(decimationMode)
		bsd.blockModes[packedIdx].quantMode = quantMode
		bsd.blockModes[packedIdx].isDualPlane = isDualPlane
		bsd.blockModes[packedIdx].modeIndex = uint16(i)

		// No percentile table for 3D, so enable everything.
		bsd.blockModes[packedIdx].percentileHit = true
		bsd.blockModes[packedIdx].percentileAlways = true
		bsd.decimationModes[decimationMode].percentileHit = true
		bsd.decimationModes[decimationMode].percentileAlways = true

		bsd.blockModePackedIndex[i] = int16(packedIdx)
		packedIdx++
	}

	bsd.blockModeCount = packedIdx

	assignKmeansTexels(bsd)
}

// initBlockSizeDescriptor builds every precomputed table for one block
// footprint. canOmitModes and modeCutoff only affect the 2D encoder path;
// decoders must pass canOmitModes == false so no legal mode is dropped.
func initBlockSizeDescriptor(xTexels, yTexels, zTexels int, canOmitModes bool, modeCutoff float32, bsd *BlockSizeDescriptor) {
	if zTexels > 1 {
		constructBlockSizeDescriptor3D(xTexels, yTexels, zTexels, bsd)
	} else {
		constructBlockSizeDescriptor2D(xTexels, yTexels, canOmitModes, modeCutoff, bsd)
	}

	initPartitionTables(bsd)
}

// termBlockSizeDescriptor releases the decimation tables owned by the
// descriptor.
func termBlockSizeDescriptor(bsd *BlockSizeDescriptor) {
	for i := 0; i < bsd.decimationModeCount; i++ {
		bsd.decimationTables[i] = nil
	}
}
