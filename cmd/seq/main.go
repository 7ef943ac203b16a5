package main

import (
	"log"
	"os"

	"github.com/junrushao/pre-commit-clang-tidy/sequence"
)

// numElements is the exclusive upper bound of the printed sequence.
const numElements = 3

func main() {
	seq := sequence.Ascending(numElements)

	if err := seq.Fprint(os.Stdout); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
