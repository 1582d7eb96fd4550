// Command stats builds many random AVL trees in parallel and
// reports how their heights are distributed.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"time"

	"go.lepak.sg/avltree/tree/avl"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

var (
	seed  = flag.Int64("s", 0, "seed (default current unix time in ns)")
	num   = flag.Int("n", 1000, "number of nodes in each tree")
	trees = flag.Int("t", 100, "number of trees to build")
	jobs  = flag.Int("j", runtime.GOMAXPROCS(0), "number of trees to build at once")
)

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *trees <= 0 || *jobs <= 0 {
		panic("-t and -j must be positive")
	}

	heights, err := buildAll(context.Background(), *num, *trees, *jobs, *seed)
	if err != nil {
		panic(err)
	}

	slices.Sort(heights)

	fmt.Println("seed:", *seed)
	fmt.Println("trees:", *trees, "nodes each:", *num)
	fmt.Println("height min:", heights[0],
		"median:", heights[len(heights)/2],
		"max:", heights[len(heights)-1])
	fmt.Printf("ideal: %d avl bound: %.1f\n",
		int(math.Ceil(math.Log2(float64(*num+1)))),
		1.44*math.Log2(float64(*num+2))-0.328)
}

// buildAll builds count trees, at most jobs at a time, and returns
// their heights. Each tree stays inside the goroutine that built it.
func buildAll(ctx context.Context, num, count, jobs int, seed int64) ([]int, error) {
	seeds := rand.New(rand.NewSource(seed))
	heights := make([]int, count)
	sem := semaphore.NewWeighted(int64(jobs))
	eg, ctx := errgroup.WithContext(ctx)

	var err error
	for i := 0; i < count; i++ {
		if err = ctx.Err(); err != nil {
			break
		}
		if err = sem.Acquire(ctx, 1); err != nil {
			break
		}

		i, s := i, seeds.Int63()
		eg.Go(func() error {
			defer sem.Release(1)

			tr := avl.BuildRandom(num, s)
			if err := tr.Validate(); err != nil {
				return fmt.Errorf("tree %d (seed %d): %w", i, s, err)
			}
			heights[i] = tr.Height()
			return nil
		})
	}

	// a failed build cancels ctx, so report its error first
	if werr := eg.Wait(); werr != nil {
		return nil, werr
	}
	if err != nil {
		return nil, err
	}
	return heights, nil
}
