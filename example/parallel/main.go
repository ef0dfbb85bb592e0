// Command parallel runs the same inference as the heredity command with the
// hypothesis space split across worker goroutines, and reports how the
// worker count was chosen. Useful for pedigrees near the practical size
// limit of exhaustive enumeration.
package main

import (
	"flag"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/carbocation/heredity"
	"github.com/carbocation/pfx"
)

func main() {
	path := flag.String("data", "", "Filename of the pedigree to process (CSV, optionally .gz/.zst, or a .db/.sqlite file)")
	workers := flag.Int("workers", 0, "Number of workers; 0 uses one per CPU")
	flag.Parse()

	if *path == "" {
		flag.PrintDefaults()
		log.Fatalln("No pedigree file found")
	}

	if strings.HasPrefix(*path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*path = filepath.Join(usr.HomeDir, (*path)[2:])
	}

	pedigree, err := heredity.Open(*path)
	if err != nil {
		log.Fatalln(err)
	}

	n := *workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	log.Println("Launching", n, "workers over a hypothesis space of up to",
		heredity.HypothesisSpaceSize(len(pedigree.People)), "hypotheses")

	results, err := heredity.InferParallel(pedigree, heredity.DefaultProbs(), n)
	if err != nil {
		log.Fatalln(err)
	}

	if err := heredity.WriteReport(os.Stdout, pedigree, results); err != nil {
		log.Fatalln(err)
	}
}
