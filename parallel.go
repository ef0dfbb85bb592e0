package heredity

import (
	"runtime"
	"sync"
)

// InferParallel computes the same result as Infer with the hypothesis space
// partitioned across workers. Each worker claims a stride of the trait
// subsets, enumerates all gene partitions for the subsets that survive the
// evidence, and accumulates into a private Results; the partials are merged
// elementwise before normalization, so no accumulation state is shared while
// workers run. Merge order can differ between runs, which perturbs only the
// least-significant bits of the output. workers <= 0 selects one worker per
// CPU.
func InferParallel(p *Pedigree, probs Probs, workers int) (Results, error) {
	if len(p.People) == 0 {
		return nil, ErrDegenerateDistribution
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if traitSets := uint64(1) << uint(len(p.People)); uint64(workers) > traitSets {
		workers = int(traitSets)
	}

	var observed, want Set
	for i := range p.People {
		switch p.People[i].Trait {
		case TraitPresent:
			observed |= 1 << uint(i)
			want |= 1 << uint(i)
		case TraitAbsent:
			observed |= 1 << uint(i)
		}
	}
	full := Set(1)<<uint(len(p.People)) - 1

	type partial struct {
		results Results
		err     error
	}

	output := make(chan partial, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results := newResults(p)

			// Trait subsets are claimed round-robin by worker index.
			for trait := Set(w); trait <= full; trait += Set(workers) {
				if trait&observed != want {
					continue
				}
				if err := accumulatePartitions(p, probs, full, trait, results); err != nil {
					output <- partial{err: err}
					return
				}
			}

			output <- partial{results: results}
		}(w)
	}

	wg.Wait()
	close(output)

	merged := newResults(p)
	for part := range output {
		if part.err != nil {
			return nil, part.err
		}
		merged.merge(part.results)
	}

	if err := merged.Normalize(); err != nil {
		return nil, err
	}

	return merged, nil
}

// accumulatePartitions walks every disjoint (one-copy, two-copy) partition
// of the population for a fixed trait subset, adding each hypothesis's joint
// probability into results.
func accumulatePartitions(p *Pedigree, probs Probs, full, trait Set, results Results) error {
	h := Hypothesis{HaveTrait: trait}

	one := Set(0)
	for {
		remainder := full &^ one

		two := Set(0)
		for {
			h.OneGene, h.TwoGenes = one, two

			jp, err := JointProbability(p, &h, probs)
			if err != nil {
				return err
			}
			results.accumulate(&h, jp)

			if two = nextSubset(two, remainder); two == 0 {
				break
			}
		}

		if one = nextSubset(one, full); one == 0 {
			break
		}
	}

	return nil
}
