// Command gen-scenarios generates synthetic scenario datasets for
// testing ingest, slicing and plotting without real dataset files.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/banshee-data/scenario.report/internal/dataset"
)

func main() {
	output := flag.String("o", "sample.ndjson", "output path (.gz for compression)")
	count := flag.Int("n", 10, "number of scenarios")
	objects := flag.Int("objects", 32, "objects per scenario")
	timesteps := flag.Int("timesteps", 91, "timesteps per scenario")
	roadPoints := flag.Int("road-points", 400, "roadgraph points per scenario")
	lights := flag.Int("lights", 4, "traffic lights per scenario")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	rnd := rand.New(rand.NewSource(*seed))
	w, err := dataset.Create(*output)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer w.Close()

	cfg := dataset.SyntheticConfig{
		NumObjects:    *objects,
		NumTimesteps:  *timesteps,
		NumRoadPoints: *roadPoints,
		NumLights:     *lights,
	}
	for i := 0; i < *count; i++ {
		s, err := dataset.Synthetic(fmt.Sprintf("synthetic-%04d", i), cfg, rnd)
		if err != nil {
			log.Fatalf("generate scenario %d: %v", i, err)
		}
		if err := w.Write(s); err != nil {
			log.Fatalf("write scenario %d: %v", i, err)
		}
		if (i+1)%10 == 0 {
			log.Printf("%d/%d scenarios", i+1, *count)
		}
	}
	log.Printf("✓ Created: %s", *output)
}
