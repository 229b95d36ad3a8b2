package astc

// initDecimationInfo2D populates a decimation info structure for a 2D block
// footprint and weight grid pair.
//
// Per-texel weights are derived from the grid with truncated-precision
// bilinear interpolation in 4.4 fixed point; the four corner contributions
// always sum to texelWeightSum. The same pass accumulates the reverse
// weight-to-texel mapping.
//
// This is a port of initialize_decimation_table_2d() in
// Source/astcenc_block_sizes.cpp.
func initDecimationInfo2D(xTexels, yTexels, xWeights, yWeights int, di *decimationInfo) {
	texelsPerBlock := xTexels * yTexels
	weightsPerBlock := xWeights * yWeights

	var weightCountOfTexel [blockMaxTexels]uint8
	var gridWeightsOfTexel [blockMaxTexels][4]uint8
	var weightsOfTexel [blockMaxTexels][4]uint8

	var texelCountOfWeight [blockMaxWeights]uint8
	var texelsOfWeight [blockMaxWeights][blockMaxTexels]uint8
	var texelWeightsOfWeight [blockMaxWeights][blockMaxTexels]int
	maxTexelCountOfWeight := uint8(0)

	xScale := (1024 + xTexels/2) / (xTexels - 1)
	yScale := (1024 + yTexels/2) / (yTexels - 1)

	for y := 0; y < yTexels; y++ {
		for x := 0; x < xTexels; x++ {
			texel := y*xTexels + x

			xWeight := (xScale*x*(xWeights-1) + 32) >> 6
			yWeight := (yScale*y*(yWeights-1) + 32) >> 6

			xWeightFrac := xWeight & 0xF
			yWeightFrac := yWeight & 0xF
			xWeightInt := xWeight >> 4
			yWeightInt := yWeight >> 4

			var qweight [4]int
			qweight[0] = xWeightInt + yWeightInt*xWeights
			qweight[1] = qweight[0] + 1
			qweight[2] = qweight[0] + xWeights
			qweight[3] = qweight[2] + 1

			// Truncated-precision bilinear interpolation.
			prod := xWeightFrac * yWeightFrac

			var weight [4]int
			weight[3] = (prod + 8) >> 4
			weight[1] = xWeightFrac - weight[3]
			weight[2] = yWeightFrac - weight[3]
			weight[0] = 16 - xWeightFrac - yWeightFrac + weight[3]

			for i := 0; i < 4; i++ {
				if weight[i] == 0 {
					continue
				}
				q := qweight[i]
				gridWeightsOfTexel[texel][weightCountOfTexel[texel]] = uint8(q)
				weightsOfTexel[texel][weightCountOfTexel[texel]] = uint8(weight[i])
				weightCountOfTexel[texel]++
				texelsOfWeight[q][texelCountOfWeight[q]] = uint8(texel)
				texelWeightsOfWeight[q][texelCountOfWeight[q]] = weight[i]
				texelCountOfWeight[q]++
				if texelCountOfWeight[q] > maxTexelCountOfWeight {
					maxTexelCountOfWeight = texelCountOfWeight[q]
				}
			}
		}
	}

	storeDecimationInfo(texelsPerBlock, weightsPerBlock, xWeights, yWeights, 1,
		&weightCountOfTexel, &gridWeightsOfTexel, &weightsOfTexel,
		&texelCountOfWeight, &texelsOfWeight, &texelWeightsOfWeight,
		maxTexelCountOfWeight, di)
}

// initDecimationInfo3D populates a decimation info structure for a 3D block
// footprint and weight grid pair.
//
// The 3D infill uses simplex interpolation: each texel takes contributions
// from four corners of a tetrahedron within its grid cell, selected from the
// ordering of the three coordinate fractions. Cases 1 and 6 of the ordering
// predicate cannot occur for real fractions but are mapped to case 0 anyway.
//
// This is a port of initialize_decimation_table_3d() in
// Source/astcenc_block_sizes.cpp.
func initDecimationInfo3D(xTexels, yTexels, zTexels, xWeights, yWeights, zWeights int, di *decimationInfo) {
	texelsPerBlock := xTexels * yTexels * zTexels
	weightsPerBlock := xWeights * yWeights * zWeights

	var weightCountOfTexel [blockMaxTexels]uint8
	var gridWeightsOfTexel [blockMaxTexels][4]uint8
	var weightsOfTexel [blockMaxTexels][4]uint8

	var texelCountOfWeight [blockMaxWeights]uint8
	var texelsOfWeight [blockMaxWeights][blockMaxTexels]uint8
	var texelWeightsOfWeight [blockMaxWeights][blockMaxTexels]int
	maxTexelCountOfWeight := uint8(0)

	xScale := (1024 + xTexels/2) / (xTexels - 1)
	yScale := (1024 + yTexels/2) / (yTexels - 1)
	zScale := (1024 + zTexels/2) / (zTexels - 1)

	N := xWeights
	NM := xWeights * yWeights

	for z := 0; z < zTexels; z++ {
		for y := 0; y < yTexels; y++ {
			for x := 0; x < xTexels; x++ {
				texel := (z*yTexels+y)*xTexels + x

				xWeight := (xScale*x*(xWeights-1) + 32) >> 6
				yWeight := (yScale*y*(yWeights-1) + 32) >> 6
				zWeight := (zScale*z*(zWeights-1) + 32) >> 6

				fs := xWeight & 0xF
				ft := yWeight & 0xF
				fp := zWeight & 0xF
				xWeightInt := xWeight >> 4
				yWeightInt := yWeight >> 4
				zWeightInt := zWeight >> 4

				var qweight [4]int
				qweight[0] = (zWeightInt*yWeights+yWeightInt)*xWeights + xWeightInt
				qweight[3] = ((zWeightInt+1)*yWeights+(yWeightInt+1))*xWeights + (xWeightInt + 1)

				cas := 0
				if fs > ft {
					cas |= 4
				}
				if ft > fp {
					cas |= 2
				}
				if fs > fp {
					cas |= 1
				}

				var s1, s2, w0, w1, w2, w3 int
				switch cas {
				case 7:
					s1 = 1
					s2 = N
					w0 = 16 - fs
					w1 = fs - ft
					w2 = ft - fp
					w3 = fp
				case 3:
					s1 = N
					s2 = 1
					w0 = 16 - ft
					w1 = ft - fs
					w2 = fs - fp
					w3 = fp
				case 5:
					s1 = 1
					s2 = NM
					w0 = 16 - fs
					w1 = fs - fp
					w2 = fp - ft
					w3 = ft
				case 4:
					s1 = NM
					s2 = 1
					w0 = 16 - fp
					w1 = fp - fs
					w2 = fs - ft
					w3 = ft
				case 2:
					s1 = N
					s2 = NM
					w0 = 16 - ft
					w1 = ft - fp
					w2 = fp - fs
					w3 = fs
				default:
					s1 = NM
					s2 = N
					w0 = 16 - fp
					w1 = fp - ft
					w2 = ft - fs
					w3 = fs
				}

				qweight[1] = qweight[0] + s1
				qweight[2] = qweight[1] + s2
				weight := [4]int{w0, w1, w2, w3}

				for i := 0; i < 4; i++ {
					if weight[i] == 0 {
						continue
					}
					q := qweight[i]
					gridWeightsOfTexel[texel][weightCountOfTexel[texel]] = uint8(q)
					weightsOfTexel[texel][weightCountOfTexel[texel]] = uint8(weight[i])
					weightCountOfTexel[texel]++
					texelsOfWeight[q][texelCountOfWeight[q]] = uint8(texel)
					texelWeightsOfWeight[q][texelCountOfWeight[q]] = weight[i]
					texelCountOfWeight[q]++
					if texelCountOfWeight[q] > maxTexelCountOfWeight {
						maxTexelCountOfWeight = texelCountOfWeight[q]
					}
				}
			}
		}
	}

	storeDecimationInfo(texelsPerBlock, weightsPerBlock, xWeights, yWeights, zWeights,
		&weightCountOfTexel, &gridWeightsOfTexel, &weightsOfTexel,
		&texelCountOfWeight, &texelsOfWeight, &texelWeightsOfWeight,
		maxTexelCountOfWeight, di)
}

// storeDecimationInfo transposes the accumulated scratch mappings into the
// SIMD layouts and initializes the over-read tails.
func storeDecimationInfo(
	texelsPerBlock, weightsPerBlock, xWeights, yWeights, zWeights int,
	weightCountOfTexel *[blockMaxTexels]uint8,
	gridWeightsOfTexel *[blockMaxTexels][4]uint8,
	weightsOfTexel *[blockMaxTexels][4]uint8,
	texelCountOfWeight *[blockMaxWeights]uint8,
	texelsOfWeight *[blockMaxWeights][blockMaxTexels]uint8,
	texelWeightsOfWeight *[blockMaxWeights][blockMaxTexels]int,
	maxTexelCountOfWeight uint8,
	di *decimationInfo,
) {
	for i := 0; i < texelsPerBlock; i++ {
		di.texelWeightCount[i] = weightCountOfTexel[i]

		// Unused slots stay zero so vector kernels can process all four
		// unconditionally.
		for j := 0; j < 4; j++ {
			di.texelWeightsInt4t[j][i] = 0
			di.texelWeightsFloat4t[j][i] = 0
			di.texelWeights4t[j][i] = 0
		}

		for j := 0; j < int(weightCountOfTexel[i]); j++ {
			di.texelWeightsInt4t[j][i] = weightsOfTexel[i][j]
			di.texelWeightsFloat4t[j][i] = float32(weightsOfTexel[i][j]) * (1.0 / texelWeightSum)
			di.texelWeights4t[j][i] = gridWeightsOfTexel[i][j]
		}
	}

	for i := 0; i < weightsPerBlock; i++ {
		texelCount := int(texelCountOfWeight[i])
		di.weightTexelCount[i] = uint8(texelCount)

		for j := 0; j < texelCount; j++ {
			texel := texelsOfWeight[i][j]

			di.weightTexel[j][i] = texel
			di.weightsFlt[j][i] = float32(texelWeightsOfWeight[i][j])

			// Unroll the contributor list of this texel. Exactly one of the
			// four contributors is weight i itself; swap it into slot 0 so
			// the kernels can treat it as the identity lane.
			swapIdx := -1
			for k := 0; k < 4; k++ {
				dttw := di.texelWeights4t[k][texel]
				dttwf := di.texelWeightsFloat4t[k][texel]
				if int(dttw) == i && dttwf != 0.0 {
					swapIdx = k
				}
				di.texelWeightsTexel[i][j][k] = dttw
				di.texelWeightsFloatTexel[i][j][k] = dttwf
			}

			if swapIdx != 0 {
				vi := di.texelWeightsTexel[i][j][0]
				vf := di.texelWeightsFloatTexel[i][j][0]
				di.texelWeightsTexel[i][j][0] = di.texelWeightsTexel[i][j][swapIdx]
				di.texelWeightsFloatTexel[i][j][0] = di.texelWeightsFloatTexel[i][j][swapIdx]
				di.texelWeightsTexel[i][j][swapIdx] = vi
				di.texelWeightsFloatTexel[i][j][swapIdx] = vf
			}
		}

		// Pad the in-weight tail with the last live texel so gathers past
		// texelCount stay on a valid in-block index.
		lastTexel := di.weightTexel[texelCount-1][i]
		for j := texelCount; j < int(maxTexelCountOfWeight); j++ {
			di.weightTexel[j][i] = lastTexel
			di.weightsFlt[j][i] = 0.0
		}
	}

	// Zero the texel-indexed tails up to the vector multiple.
	texelsPerBlockSIMD := roundUpToSIMDMultiple(texelsPerBlock)
	for i := texelsPerBlock; i < texelsPerBlockSIMD; i++ {
		di.texelWeightCount[i] = 0

		for j := 0; j < 4; j++ {
			di.texelWeightsFloat4t[j][i] = 0
			di.texelWeights4t[j][i] = 0
			di.texelWeightsInt4t[j][i] = 0
		}
	}

	// Weight-indexed tails duplicate the last live texel of the last live
	// weight so gathers stay within the block.
	lastTexelCount := int(texelCountOfWeight[weightsPerBlock-1])
	lastTexel := di.weightTexel[lastTexelCount-1][weightsPerBlock-1]

	weightsPerBlockSIMD := roundUpToSIMDMultiple(weightsPerBlock)
	for i := weightsPerBlock; i < weightsPerBlockSIMD; i++ {
		di.weightTexelCount[i] = 0

		for j := 0; j < int(maxTexelCountOfWeight); j++ {
			di.weightTexel[j][i] = lastTexel
			di.weightsFlt[j][i] = 0.0
		}
	}

	di.texelCount = texelsPerBlock
	di.weightCount = weightsPerBlock
	di.weightX = xWeights
	di.weightY = yWeights
	di.weightZ = zWeights
	di.maxTexelCountOfWeight = maxTexelCountOfWeight
}
