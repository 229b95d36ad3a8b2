package astc_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/astc-codec/astc-geometry/astc"
)

var legal2DFootprints = [][2]int{
	{4, 4}, {5, 4}, {5, 5}, {6, 5}, {6, 6}, {8, 5}, {8, 6}, {8, 8},
	{10, 5}, {10, 6}, {10, 8}, {10, 10}, {12, 10}, {12, 12},
}

var legal3DFootprints = [][3]int{
	{3, 3, 3}, {4, 3, 3}, {4, 4, 3}, {4, 4, 4}, {5, 4, 4},
	{5, 5, 4}, {5, 5, 5}, {6, 5, 5}, {6, 6, 5}, {6, 6, 6},
}

func TestNewBlockSizeDescriptor_AcceptsLegalFootprints(t *testing.T) {
	for _, fp := range legal2DFootprints {
		bsd, err := astc.NewBlockSizeDescriptor(fp[0], fp[1], 1, false, 0)
		require.NoErrorf(t, err, "footprint %dx%d", fp[0], fp[1])
		bsd.Close()
	}

	for _, fp := range legal3DFootprints {
		bsd, err := astc.NewBlockSizeDescriptor(fp[0], fp[1], fp[2], false, 0)
		require.NoErrorf(t, err, "footprint %dx%dx%d", fp[0], fp[1], fp[2])
		bsd.Close()
	}
}

func TestNewBlockSizeDescriptor_ZeroDepthMeans2D(t *testing.T) {
	bsd, err := astc.NewBlockSizeDescriptor(6, 6, 0, false, 0)
	require.NoError(t, err)
	defer bsd.Close()
	require.Equal(t, 1, bsd.Info().BlockZ)
}

func TestNewBlockSizeDescriptor_RejectsBadFootprints(t *testing.T) {
	cases := [][3]int{
		{0, 4, 1},
		{4, 0, 1},
		{4, 4, -1},
		{3, 3, 1},   // 2D blocks start at 4x4
		{7, 7, 1},   // not an ASTC footprint
		{12, 4, 1},  // 12-wide only pairs with 10 or 12
		{13, 13, 1}, // past the largest footprint
		{2, 2, 2},   // 3D blocks start at 3x3x3
		{6, 6, 4},   // not an ASTC 3D footprint
		{7, 7, 7},   // over the 216-texel cap anyway
	}

	for _, c := range cases {
		_, err := astc.NewBlockSizeDescriptor(c[0], c[1], c[2], false, 0)
		require.Errorf(t, err, "footprint %dx%dx%d", c[0], c[1], c[2])
		require.Equal(t, astc.ErrBadBlockSize, astc.ErrorCodeOf(err))
	}
}

func TestBlockSizeDescriptorInfo(t *testing.T) {
	bsd, err := astc.NewBlockSizeDescriptor(8, 8, 1, false, 0)
	require.NoError(t, err)
	defer bsd.Close()

	info := bsd.Info()
	require.Equal(t, 8, info.BlockX)
	require.Equal(t, 8, info.BlockY)
	require.Equal(t, 1, info.BlockZ)
	require.Equal(t, 64, info.TexelCount)
	require.Equal(t, 64, info.KMeansTexelCount)
	require.Positive(t, info.BlockModeCount)
	require.Positive(t, info.DecimationModeCount)
	for pc := 2; pc <= 4; pc++ {
		require.Positivef(t, info.LivePartitionings[pc-2], "%d partitions", pc)
		require.LessOrEqual(t, info.LivePartitionings[pc-2], 1024)
	}
}

func TestBlockModeLookupRoundTrip(t *testing.T) {
	for _, fp := range [][3]int{{4, 4, 1}, {8, 8, 1}, {12, 12, 1}, {4, 4, 4}, {6, 6, 6}} {
		fp := fp
		t.Run(fmt.Sprintf("%dx%dx%d", fp[0], fp[1], fp[2]), func(t *testing.T) {
			bsd, err := astc.NewBlockSizeDescriptor(fp[0], fp[1], fp[2], false, 0)
			require.NoError(t, err)
			defer bsd.Close()

			accepted := 0
			for mode := 0; mode < 2048; mode++ {
				bm, ok := bsd.BlockMode(mode)
				if !ok {
					continue
				}
				accepted++

				require.Equal(t, mode, bm.ModeIndex)
				require.LessOrEqual(t, bm.WeightX, fp[0])
				require.LessOrEqual(t, bm.WeightY, fp[1])
				require.LessOrEqual(t, bm.WeightZ, fp[2])

				weights := bm.WeightX * bm.WeightY * bm.WeightZ
				if bm.IsDualPlane {
					weights *= 2
				}
				require.Equal(t, weights, bm.WeightCount)
				require.LessOrEqual(t, bm.WeightCount, 64)
				require.LessOrEqual(t, bm.QuantMode, uint8(11))
			}
			require.Equal(t, accepted, bsd.Info().BlockModeCount)
		})
	}
}

func TestBlockModeLookupRejectsOutOfRange(t *testing.T) {
	bsd, err := astc.NewBlockSizeDescriptor(4, 4, 1, false, 0)
	require.NoError(t, err)
	defer bsd.Close()

	for _, mode := range []int{-1, 2048, 1 << 20} {
		_, ok := bsd.BlockMode(mode)
		require.False(t, ok)
	}
}

func TestPartitioningAccessor(t *testing.T) {
	bsd, err := astc.NewBlockSizeDescriptor(6, 6, 1, false, 0)
	require.NoError(t, err)
	defer bsd.Close()

	pi, ok := bsd.Partitioning(1, 0)
	require.True(t, ok)
	require.Equal(t, 1, pi.PartitionCount)
	require.Equal(t, 36, pi.PartitionTexelCount[0])
	require.Len(t, pi.Assignments, 36)

	_, ok = bsd.Partitioning(2, -1)
	require.False(t, ok)
	_, ok = bsd.Partitioning(2, 1024)
	require.False(t, ok)
	_, ok = bsd.Partitioning(1, 1)
	require.False(t, ok)
	_, ok = bsd.Partitioning(5, 0)
	require.False(t, ok)
	_, ok = bsd.Partitioning(0, 0)
	require.False(t, ok)

	for pc := 2; pc <= 4; pc++ {
		for seed := 0; seed < 1024; seed++ {
			pi, ok := bsd.Partitioning(pc, seed)
			require.True(t, ok)
			if pi.PartitionCount == 0 {
				continue
			}

			total := 0
			for _, n := range pi.PartitionTexelCount {
				total += n
			}
			require.Equal(t, 36, total)
			for _, p := range pi.Assignments {
				require.Less(t, p, uint8(4))
			}
		}
	}
}

func TestDescriptorConstructionIsDeterministic(t *testing.T) {
	a, err := astc.NewBlockSizeDescriptor(10, 8, 1, false, 0)
	require.NoError(t, err)
	defer a.Close()

	b, err := astc.NewBlockSizeDescriptor(10, 8, 1, false, 0)
	require.NoError(t, err)
	defer b.Close()

	require.Equal(t, a.Info(), b.Info())
	for mode := 0; mode < 2048; mode++ {
		bmA, okA := a.BlockMode(mode)
		bmB, okB := b.BlockMode(mode)
		require.Equal(t, okA, okB)
		require.Equal(t, bmA, bmB)
	}
	for seed := 0; seed < 1024; seed++ {
		piA, _ := a.Partitioning(3, seed)
		piB, _ := b.Partitioning(3, seed)
		require.Equal(t, piA, piB)
	}
}
