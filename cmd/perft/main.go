// Command perft measures move generation performance by walking the
// legal move tree of the standard starting position to a given depth,
// following the teacher's standalone perft tool, including its
// cpu/memory profiling flags.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/shaobingxie/gochess/bitboard"
	"github.com/shaobingxie/gochess/internal/perft"
)

func main() {
	depth := flag.Int("depth", 1, "perft depth")
	cpuprofile := flag.String("cpuprofile", "", "file to write a CPU profile")
	memprofile := flag.String("memprofile", "", "file to write a memory profile")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	b := bitboard.Init()

	start := time.Now()
	nodes := perft.Count(b, *depth)
	elapsed := time.Since(start)

	log.Printf("depth %d: %d nodes in %s", *depth, nodes, elapsed)

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal(err)
		}
	}
}
