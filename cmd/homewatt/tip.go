package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/jgoulah/homewatt/internal/tips"
)

var tipSeed int64

var tipCmd = &cobra.Command{
	Use:   "tip",
	Short: "Show a random energy-saving tip",
	RunE:  runTip,
}

func init() {
	tipCmd.Flags().Int64Var(&tipSeed, "seed", 0, "Random seed (0 = time-based)")
	rootCmd.AddCommand(tipCmd)
}

func runTip(cmd *cobra.Command, args []string) error {
	seed := tipSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fmt.Println(tips.Pick(rand.New(rand.NewSource(seed))))
	return nil
}
