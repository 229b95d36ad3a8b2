package astc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeBlockMode2D_KnownModes(t *testing.T) {
	cases := []struct {
		mode        int
		xWeights    int
		yWeights    int
		isDualPlane bool
		quantMode   quantMethod
	}{
		// High-precision family, layout 0: wx=B+4, wy=A+2.
		{mode: 0x0042, xWeights: 4, yWeights: 4, quantMode: quant4},
		// Layout 0 with B=3 gives the widest grid of the family.
		{mode: 0x01C2, xWeights: 7, yWeights: 4, quantMode: quant4},
		// H set lifts the quant mode by 6 steps.
		{mode: 0x0253, xWeights: 4, yWeights: 4, quantMode: quant32},
	}

	for _, c := range cases {
		xW, yW, dual, qm, weightBits, ok := decodeBlockMode2D(c.mode)
		require.Truef(t, ok, "mode 0x%03X should decode", c.mode)
		require.Equalf(t, c.xWeights, xW, "mode 0x%03X x weights", c.mode)
		require.Equalf(t, c.yWeights, yW, "mode 0x%03X y weights", c.mode)
		require.Equalf(t, c.isDualPlane, dual, "mode 0x%03X dual plane", c.mode)
		require.Equalf(t, c.quantMode, qm, "mode 0x%03X quant mode", c.mode)
		require.Equal(t, iseSequenceBitCount(xW*yW*b2i(dual), qm), weightBits)
	}
}

func b2i(dual bool) int {
	if dual {
		return 2
	}
	return 1
}

func TestDecodeBlockMode2D_InvalidModes(t *testing.T) {
	// 0x07FF asks for a 3x5 dual-plane grid at quant32: 150 weight bits,
	// far past the 96-bit budget.
	_, _, _, _, _, ok := decodeBlockMode2D(0x07FF)
	require.False(t, ok)

	// The m[0..1]==0, m[2..3]==0 path is reserved and must reject before
	// the quant mode is even derived.
	for _, mode := range []int{0x0000, 0x0010, 0x0600} {
		_, _, _, _, _, ok := decodeBlockMode2D(mode)
		require.Falsef(t, ok, "mode 0x%03X should be invalid", mode)
	}
}

func TestDecodeBlockMode2D_EnvelopeHonored(t *testing.T) {
	for mode := 0; mode < maxWeightModes; mode++ {
		xW, yW, dual, qm, weightBits, ok := decodeBlockMode2D(mode)
		if !ok {
			continue
		}

		weightCount := xW * yW
		if dual {
			weightCount *= 2
		}
		require.LessOrEqualf(t, weightCount, blockMaxWeights, "mode 0x%03X", mode)
		require.GreaterOrEqualf(t, weightBits, blockMinWeightBits, "mode 0x%03X", mode)
		require.LessOrEqualf(t, weightBits, blockMaxWeightBits, "mode 0x%03X", mode)
		require.LessOrEqual(t, qm, quant32)
	}
}

func TestDecodeBlockMode3D_EnvelopeHonored(t *testing.T) {
	decoded := 0
	for mode := 0; mode < maxWeightModes; mode++ {
		xW, yW, zW, dual, qm, weightBits, ok := decodeBlockMode3D(mode)
		if !ok {
			continue
		}
		decoded++

		weightCount := xW * yW * zW
		if dual {
			weightCount *= 2
		}
		require.GreaterOrEqual(t, xW, 2)
		require.GreaterOrEqual(t, yW, 2)
		require.GreaterOrEqual(t, zW, 2)
		require.LessOrEqualf(t, weightCount, blockMaxWeights, "mode 0x%03X", mode)
		require.GreaterOrEqualf(t, weightBits, blockMinWeightBits, "mode 0x%03X", mode)
		require.LessOrEqualf(t, weightBits, blockMaxWeightBits, "mode 0x%03X", mode)
		require.LessOrEqual(t, qm, quant32)
	}
	require.NotZero(t, decoded)
}

func TestBlockModeAcceptanceTracksFootprint(t *testing.T) {
	// 0x01C2 decodes to a 7x4 weight grid, which fits an 8x8 block but not
	// a 6x6 one. The descriptor must reject modes whose grid outsizes the
	// block even though the mode itself is well formed.
	small, err := NewBlockSizeDescriptor(6, 6, 1, false, 0)
	require.NoError(t, err)
	defer small.Close()

	large, err := NewBlockSizeDescriptor(8, 8, 1, false, 0)
	require.NoError(t, err)
	defer large.Close()

	_, ok := small.BlockMode(0x01C2)
	require.False(t, ok)

	bm, ok := large.BlockMode(0x01C2)
	require.True(t, ok)
	require.Equal(t, 7, bm.WeightX)
	require.Equal(t, 4, bm.WeightY)
	require.Equal(t, uint8(quant4), bm.QuantMode)
	require.False(t, bm.IsDualPlane)
}
