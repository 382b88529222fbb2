// Command linemend repairs gaps in a digitized line network stored as
// GeoJSON: it finds dangling endpoints, synthesizes artificial connector
// segments between them under an angular plausibility threshold, and
// writes the repaired network to a new file.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linemend/chains"
	"github.com/katalvlaran/linemend/gapclose"
	"github.com/katalvlaran/linemend/lineio"
)

var rootCmd = &cobra.Command{
	Use:   "linemend",
	Short: "Close gaps in a line network with artificial connector segments",
	Long: `linemend reads a GeoJSON FeatureCollection of line features, pairs each
dangling end point with its nearest dangling start point, and accepts a
straight connector between them when the bearings of both lines and of
the connector itself agree within the --degree threshold. Accepted
connectors are appended to the network as artificial features and the
result is written to --output.

Examples:
  linemend                                  # defaults, like running the original script
  linemend -p net.geojson -d 10 -o out.geojson
  linemend --max-rounds 3                   # bound the convergence loop
`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("path")
		degree, _ := cmd.Flags().GetFloat64("degree")
		output, _ := cmd.Flags().GetString("output")
		maxRounds, _ := cmd.Flags().GetInt("max-rounds")

		fmt.Println("Running with the following options:")
		fmt.Printf(" - File path: %s,\n", path)
		fmt.Printf(" - Acceptable angle: %g\n", degree)
		fmt.Printf(" - Output path: %s\n", output)

		start := time.Now()

		in, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		network, err := lineio.Read(in)
		in.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		before := chains.Count(network.Lines)

		opts := gapclose.DefaultOptions()
		opts.AngleThreshold = degree
		opts.MaxRounds = maxRounds
		res, err := gapclose.Close(network.Lines, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		network.AppendConnectors(res.Connectors)
		after := chains.Count(network.Lines)

		out, err := os.Create(output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := lineio.Write(out, network); err != nil {
			out.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := out.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%d artificial lines accepted in %d rounds\n", len(res.Connectors), res.Rounds)
		fmt.Printf("chains: %d before, %d after\n", before, after)
		fmt.Printf("unmatched: %d without successor, %d without predecessor\n",
			len(res.NoSuccessor), len(res.NoPredecessor))
		fmt.Println("Script finished.")
		fmt.Printf("Total time elapsed: %s.\n", time.Since(start))
	},
}

func init() {
	rootCmd.Flags().StringP("path", "p", "Meetvak/Meetvakken_WGS84.geojson", "Path to the input GeoJSON file")
	rootCmd.Flags().Float64P("degree", "d", 5, "Acceptable angle (degrees) between an artificial line and the lines it joins")
	rootCmd.Flags().StringP("output", "o", "filtered_lines.geojson", "Path where the output file is written")
	rootCmd.Flags().Int("max-rounds", 0, "Bound on convergence-loop rounds (0 = no bound)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
