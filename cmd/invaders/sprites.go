package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "List sprite ids",
	Long: `List every sprite id in the catalog with its size in pixels.
Entries in a --sprites file replace built-in art with the same id.`,
	Run: runSprites,
}

func runSprites(cmd *cobra.Command, _ []string) {
	_, cat := loadGame(cmd)

	fmt.Printf("  %-16s  %s\n", "ID", "Size")
	fmt.Printf("  %-16s  %s\n", "--", "----")
	for _, id := range cat.IDs() {
		sp, err := cat.Load(id)
		if err != nil {
			fatal("%v", err)
		}
		fmt.Printf("  %-16s  %dx%d\n", id, sp.W, sp.H)
	}
}
