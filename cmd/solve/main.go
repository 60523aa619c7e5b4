package main

import (
	"fmt"
	"os"

	"variantsudoku/internal/core"
	"variantsudoku/internal/givens"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: solve <givens-string> [size]")
		os.Exit(1)
	}

	size := 9
	if len(os.Args) >= 3 {
		if _, err := fmt.Sscanf(os.Args[2], "%d", &size); err != nil {
			fmt.Printf("invalid size %q: %v\n", os.Args[2], err)
			os.Exit(1)
		}
	}

	cells, err := givens.Decode(size, os.Args[1])
	if err != nil {
		fmt.Printf("invalid givens: %v\n", err)
		os.Exit(1)
	}

	solver, err := core.NewBuilder(size).WithGivens(cells).Build()
	if err != nil {
		fmt.Printf("could not build board: %v\n", err)
		os.Exit(1)
	}

	board, found := solver.FindFirstSolution(core.NewCancel())
	if !found {
		fmt.Println("Status: none")
		os.Exit(0)
	}

	values := make([]int, len(board.Masks))
	for i, m := range board.Masks {
		v, _ := m.Only()
		values[i] = v
	}
	out, err := givens.Encode(size, values)
	if err != nil {
		fmt.Printf("could not encode solution: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Status: solved")
	fmt.Println(out)
}
