package astc

// generateOnePartitionInfoEntry fills one partitioning for a (count, seed)
// pair, assigning texels in z-major scan order.
//
// Ported from generate_one_partition_info_entry() in
// Source/astcenc_partition_tables.cpp.
func generateOnePartitionInfoEntry(bsd *BlockSizeDescriptor, partitionCount, partitionIndex int, pi *partitionInfo) {
	texelsPerBlock := bsd.texelCount
	smallBlock := texelsPerBlock < 32

	var counts [blockMaxPartitions]int
	texelIdx := 0
	for z := 0; z < bsd.zdim; z++ {
		for y := 0; y < bsd.ydim; y++ {
			for x := 0; x < bsd.xdim; x++ {
				part := selectPartition(partitionIndex, x, y, z, partitionCount, smallBlock)
				pi.texelsOfPartition[part][counts[part]] = uint8(texelIdx)
				counts[part]++
				pi.partitionOfTexel[texelIdx] = part
				texelIdx++
			}
		}
	}

	// Repeat the last live texel up to the vector multiple so overfetching
	// gathers stay on valid indices.
	for i := 0; i < partitionCount; i++ {
		ptexCount := counts[i]
		ptexCountSIMD := roundUpToSIMDMultiple(ptexCount)
		for j := ptexCount; j < ptexCountSIMD; j++ {
			pi.texelsOfPartition[i][j] = pi.texelsOfPartition[i][ptexCount-1]
		}
	}

	// The reported count is truncated at the first empty partition, even if
	// a later one is populated. Downstream code keys off zero to mean "do
	// not use".
	switch {
	case counts[0] == 0:
		pi.partitionCount = 0
	case counts[1] == 0:
		pi.partitionCount = 1
	case counts[2] == 0:
		pi.partitionCount = 2
	case counts[3] == 0:
		pi.partitionCount = 3
	default:
		pi.partitionCount = 4
	}

	for i := 0; i < blockMaxPartitions; i++ {
		pi.partitionTexelCount[i] = uint8(counts[i])
		pi.coverageBitmaps[i] = 0
	}

	for i := 0; i < bsd.kmeansTexelCount; i++ {
		idx := bsd.kmeansTexels[i]
		pi.coverageBitmaps[pi.partitionOfTexel[idx]] |= 1 << uint(i)
	}
}

// generateCanonicalPartitioning produces a label-independent key for a
// partition pattern: partition ids are remapped in first-occurrence order
// and packed two bits per texel.
func generateCanonicalPartitioning(texelCount int, partitionOfTexel *[blockMaxTexels]uint8, bitPattern *[7]uint64) {
	for i := range bitPattern {
		bitPattern[i] = 0
	}

	mappedIndex := [blockMaxPartitions]int{-1, -1, -1, -1}
	mapWeightCount := 0

	for i := 0; i < texelCount; i++ {
		index := partitionOfTexel[i]

		if mappedIndex[index] == -1 {
			mappedIndex[index] = mapWeightCount
			mapWeightCount++
		}

		xlatIndex := uint64(mappedIndex[index])
		bitPattern[i>>5] |= xlatIndex << (2 * (i & 0x1F))
	}
}

func compareCanonicalPartitionings(part1, part2 *[7]uint64) bool {
	return part1[0] == part2[0] && part1[1] == part2[1] &&
		part1[2] == part2[2] && part1[3] == part2[3] &&
		part1[4] == part2[4] && part1[5] == part2[5] &&
		part1[6] == part2[6]
}

// removeDuplicatePartitionings invalidates every partitioning whose
// canonical pattern already appeared at a lower seed. The hash can generate
// the same texel grouping from several seeds and the compressor only needs
// to test one of each.
func removeDuplicatePartitionings(texelCount int, pt []partitionInfo) {
	bitPatterns := make([][7]uint64, len(pt))

	for i := range pt {
		generateCanonicalPartitioning(texelCount, &pt[i].partitionOfTexel, &bitPatterns[i])
	}

	for i := range pt {
		for j := 0; j < i; j++ {
			if compareCanonicalPartitionings(&bitPatterns[i], &bitPatterns[j]) {
				pt[i].partitionCount = 0
				break
			}
		}
	}
}

// initPartitionTables builds all partitionings for a block footprint: every
// seed for 2, 3 and 4 partitions plus the single 1-partition entry, then
// strips label-permuted duplicates from the multi-partition tables.
//
// Ported from init_partition_tables() in Source/astcenc_partition_tables.cpp.
func initPartitionTables(bsd *BlockSizeDescriptor) {
	parTab2 := bsd.partitioningsForCount(2)
	parTab3 := bsd.partitioningsForCount(3)
	parTab4 := bsd.partitioningsForCount(4)
	parTab1 := bsd.partitioningsForCount(1)

	generateOnePartitionInfoEntry(bsd, 1, 0, &parTab1[0])
	for i := 0; i < blockPartitionings; i++ {
		generateOnePartitionInfoEntry(bsd, 2, i, &parTab2[i])
		generateOnePartitionInfoEntry(bsd, 3, i, &parTab3[i])
		generateOnePartitionInfoEntry(bsd, 4, i, &parTab4[i])
	}

	removeDuplicatePartitionings(bsd.texelCount, parTab2)
	removeDuplicatePartitionings(bsd.texelCount, parTab3)
	removeDuplicatePartitionings(bsd.texelCount, parTab4)
}
