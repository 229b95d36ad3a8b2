package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/astc-codec/astc-geometry/astc"
)

func main() {
	app := &cli.App{
		Name:  "bsdinfo",
		Usage: "inspect precomputed ASTC block geometry tables",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "block",
				Value: "4x4",
				Usage: "block footprint, e.g. 4x4, 8x6 or 4x4x4",
			},
			&cli.BoolFlag{
				Name:  "decoder",
				Usage: "build decoder tables (no block mode filtering)",
			},
			&cli.Float64Flag{
				Name:  "cutoff",
				Value: 1.0,
				Usage: "encoder mode percentile cutoff in [0,1]",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "summary",
				Usage:  "print table counts for the footprint",
				Action: runSummary,
			},
			{
				Name:      "mode",
				Usage:     "describe one 11-bit block mode",
				ArgsUsage: "<mode-index>",
				Action:    runMode,
			},
			{
				Name:      "partition",
				Usage:     "print one partitioning",
				ArgsUsage: "<partition-count> <seed>",
				Action:    runPartition,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildDescriptor(c *cli.Context) (*astc.BlockSizeDescriptor, error) {
	bx, by, bz, err := parseFootprint(c.String("block"))
	if err != nil {
		return nil, err
	}
	canOmit := !c.Bool("decoder")
	return astc.NewBlockSizeDescriptor(bx, by, bz, canOmit, float32(c.Float64("cutoff")))
}

func parseFootprint(s string) (x, y, z int, err error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("bad footprint %q", s)
	}
	dims := make([]int, len(parts))
	for i, p := range parts {
		dims[i], err = strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("bad footprint %q", s)
		}
	}
	x, y = dims[0], dims[1]
	z = 1
	if len(dims) == 3 {
		z = dims[2]
	}
	return x, y, z, nil
}

func runSummary(c *cli.Context) error {
	bsd, err := buildDescriptor(c)
	if err != nil {
		return err
	}
	defer bsd.Close()

	info := bsd.Info()
	fmt.Printf("footprint:        %dx%dx%d (%d texels)\n", info.BlockX, info.BlockY, info.BlockZ, info.TexelCount)
	fmt.Printf("block modes:      %d\n", info.BlockModeCount)
	fmt.Printf("decimation modes: %d\n", info.DecimationModeCount)
	fmt.Printf("kmeans texels:    %d\n", info.KMeansTexelCount)
	for pc := 2; pc <= 4; pc++ {
		fmt.Printf("live %d-part:      %d\n", pc, info.LivePartitionings[pc-2])
	}
	return nil
}

func runMode(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: mode <mode-index>")
	}
	idx, err := parseIndex(c.Args().Get(0))
	if err != nil {
		return err
	}

	bsd, err := buildDescriptor(c)
	if err != nil {
		return err
	}
	defer bsd.Close()

	bm, ok := bsd.BlockMode(idx)
	if !ok {
		return fmt.Errorf("mode 0x%03X is not accepted for this footprint", idx)
	}

	fmt.Printf("mode:        0x%03X\n", bm.ModeIndex)
	fmt.Printf("weight grid: %dx%dx%d (%d weights)\n", bm.WeightX, bm.WeightY, bm.WeightZ, bm.WeightCount)
	fmt.Printf("quant mode:  %d\n", bm.QuantMode)
	fmt.Printf("dual plane:  %v\n", bm.IsDualPlane)
	fmt.Printf("selected:    %v (always %v)\n", bm.PercentileHit, bm.PercentileAlways)
	return nil
}

func runPartition(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("usage: partition <partition-count> <seed>")
	}
	pc, err := parseIndex(c.Args().Get(0))
	if err != nil {
		return err
	}
	seed, err := parseIndex(c.Args().Get(1))
	if err != nil {
		return err
	}

	bsd, err := buildDescriptor(c)
	if err != nil {
		return err
	}
	defer bsd.Close()

	pi, ok := bsd.Partitioning(pc, seed)
	if !ok {
		return fmt.Errorf("no partitioning for count=%d seed=%d", pc, seed)
	}
	if pi.PartitionCount == 0 {
		fmt.Printf("count=%d seed=%d: degenerate or duplicate (unused)\n", pc, seed)
		return nil
	}

	fmt.Printf("count=%d seed=%d\n", pi.PartitionCount, seed)
	for i := 0; i < pi.PartitionCount; i++ {
		fmt.Printf("partition %d: %d texels, coverage %016x\n", i, pi.PartitionTexelCount[i], pi.CoverageBitmaps[i])
	}

	info := bsd.Info()
	for y := 0; y < info.BlockY*info.BlockZ; y++ {
		row := make([]byte, info.BlockX)
		for x := 0; x < info.BlockX; x++ {
			row[x] = '0' + pi.Assignments[y*info.BlockX+x]
		}
		fmt.Println(string(row))
	}
	return nil
}

func parseIndex(s string) (int, error) {
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", s)
	}
	return int(v), nil
}
