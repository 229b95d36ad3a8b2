package astc

// NewBlockSizeDescriptor builds the full set of precomputed geometry tables
// for one ASTC block footprint: accepted block modes, decimation tables and
// partition tables.
//
// canOmitModes and modeCutoff tune the 2D encoder-side mode filter; a
// decoder context must pass canOmitModes == false (the cutoff is then
// ignored) so that every mode a conformant compressor may have emitted is
// representable. blockZ may be 0 or 1 for 2D footprints.
func NewBlockSizeDescriptor(blockX, blockY, blockZ int, canOmitModes bool, modeCutoff float32) (*BlockSizeDescriptor, error) {
	if blockZ == 0 {
		blockZ = 1
	}
	if err := validateBlockSize(blockX, blockY, blockZ); err != nil {
		return nil, err
	}

	bsd := new(BlockSizeDescriptor)
	initBlockSizeDescriptor(blockX, blockY, blockZ, canOmitModes, modeCutoff, bsd)
	return bsd, nil
}

// Close releases the decimation tables owned by the descriptor. The
// descriptor must not be used afterwards.
func (bsd *BlockSizeDescriptor) Close() {
	termBlockSizeDescriptor(bsd)
}

// BlockSizeInfo is a read-only summary of a constructed descriptor.
type BlockSizeInfo struct {
	BlockX     int
	BlockY     int
	BlockZ     int
	TexelCount int

	BlockModeCount      int
	DecimationModeCount int
	KMeansTexelCount    int

	// LivePartitionings counts the non-duplicate partitionings remaining
	// for 2, 3 and 4 partitions after canonical deduplication.
	LivePartitionings [3]int
}

// Info summarizes the descriptor contents.
func (bsd *BlockSizeDescriptor) Info() BlockSizeInfo {
	info := BlockSizeInfo{
		BlockX:              bsd.xdim,
		BlockY:              bsd.ydim,
		BlockZ:              bsd.zdim,
		TexelCount:          bsd.texelCount,
		BlockModeCount:      bsd.blockModeCount,
		DecimationModeCount: bsd.decimationModeCount,
		KMeansTexelCount:    bsd.kmeansTexelCount,
	}

	for pc := 2; pc <= 4; pc++ {
		live := 0
		for _, pi := range bsd.partitioningsForCount(pc) {
			if pi.partitionCount != 0 {
				live++
			}
		}
		info.LivePartitionings[pc-2] = live
	}

	return info
}

// BlockModeInfo describes one accepted 11-bit block mode.
type BlockModeInfo struct {
	ModeIndex   int
	WeightX     int
	WeightY     int
	WeightZ     int
	WeightCount int
	QuantMode   uint8
	IsDualPlane bool

	PercentileHit    bool
	PercentileAlways bool
}

// BlockMode looks up an accepted block mode by its 11-bit index. The second
// return is false for modes the descriptor rejected.
func (bsd *BlockSizeDescriptor) BlockMode(modeIndex int) (BlockModeInfo, bool) {
	if modeIndex < 0 || modeIndex >= maxWeightModes {
		return BlockModeInfo{}, false
	}
	packed := bsd.blockModePackedIndex[modeIndex]
	if packed < 0 {
		return BlockModeInfo{}, false
	}

	bm := &bsd.blockModes[packed]
	di := bsd.decimationTables[bm.decimationMode]

	weightCount := di.weightCount
	if bm.isDualPlane {
		weightCount *= 2
	}

	return BlockModeInfo{
		ModeIndex:        int(bm.modeIndex),
		WeightX:          di.weightX,
		WeightY:          di.weightY,
		WeightZ:          di.weightZ,
		WeightCount:      weightCount,
		QuantMode:        uint8(bm.quantMode),
		IsDualPlane:      bm.isDualPlane,
		PercentileHit:    bm.percentileHit,
		PercentileAlways: bm.percentileAlways,
	}, true
}

// PartitioningInfo is a read-only view of one procedural partitioning.
type PartitioningInfo struct {
	// PartitionCount is 0 for degenerate or duplicate entries that must not
	// be used.
	PartitionCount      int
	PartitionTexelCount [4]int
	CoverageBitmaps     [4]uint64

	// Assignments holds the partition id of each texel in scan order.
	Assignments []uint8
}

// Partitioning returns the partitioning for a (partition count, seed) pair.
// partitionCount must be 1..4 and index below 1024 (and 0 for a single
// partition).
func (bsd *BlockSizeDescriptor) Partitioning(partitionCount, index int) (PartitioningInfo, bool) {
	tab := bsd.partitioningsForCount(partitionCount)
	if tab == nil || index < 0 || index >= len(tab) {
		return PartitioningInfo{}, false
	}

	pi := &tab[index]
	out := PartitioningInfo{
		PartitionCount:  int(pi.partitionCount),
		CoverageBitmaps: pi.coverageBitmaps,
		Assignments:     append([]uint8(nil), pi.partitionOfTexel[:bsd.texelCount]...),
	}
	for i := 0; i < blockMaxPartitions; i++ {
		out.PartitionTexelCount[i] = int(pi.partitionTexelCount[i])
	}
	return out, true
}

func validateBlockSize(blockX, blockY, blockZ int) error {
	if blockX <= 0 || blockY <= 0 || blockZ <= 0 {
		return newError(ErrBadBlockSize, "astc: invalid block dimensions")
	}
	if blockX*blockY*blockZ > blockMaxTexels {
		return newError(ErrBadBlockSize, "astc: invalid block dimensions")
	}
	if blockZ <= 1 {
		if !isLegal2DBlockSize(blockX, blockY) {
			return newError(ErrBadBlockSize, "astc: invalid block dimensions")
		}
		return nil
	}
	if !isLegal3DBlockSize(blockX, blockY, blockZ) {
		return newError(ErrBadBlockSize, "astc: invalid block dimensions")
	}
	return nil
}

func isLegal2DBlockSize(xdim, ydim int) bool {
	switch (xdim << 8) | ydim {
	case 0x0404,
		0x0504,
		0x0505,
		0x0605,
		0x0606,
		0x0805,
		0x0806,
		0x0808,
		0x0A05,
		0x0A06,
		0x0A08,
		0x0A0A,
		0x0C0A,
		0x0C0C:
		return true
	default:
		return false
	}
}

func isLegal3DBlockSize(xdim, ydim, zdim int) bool {
	switch (xdim << 16) | (ydim << 8) | zdim {
	case 0x030303,
		0x040303,
		0x040403,
		0x040404,
		0x050404,
		0x050504,
		0x050505,
		0x060505,
		0x060605,
		0x060606:
		return true
	default:
		return false
	}
}
