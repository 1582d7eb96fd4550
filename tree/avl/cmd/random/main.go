package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"go.lepak.sg/avltree/tree/avl"
)

var (
	seed    = flag.Int64("s", 0, "seed (default current unix time in ns)")
	num     = flag.Int("n", 10, "number of nodes in the tree")
	deletes = flag.Int("d", 0, "number of random values to delete after building")
)

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	if err := checkSizes(*num, *deletes); err != nil {
		panic(err)
	}

	tr := avl.BuildRandom(*num, *seed)

	rd := rand.New(rand.NewSource(*seed))
	var deleted []int64
	for _, v := range rd.Perm(*num)[:*deletes] {
		if !tr.DeleteValue(int64(v)) {
			panic(fmt.Sprintf("value %d went missing", v))
		}
		deleted = append(deleted, int64(v))
	}

	if err := tr.Validate(); err != nil {
		panic(err)
	}

	fmt.Println("seed:", *seed)
	if len(deleted) > 0 {
		fmt.Println("deleted:", deleted)
	}
	fmt.Println("inorder:", tr.Values())
	fmt.Println("levelorder:", tr.LevelOrder())

	fmt.Println("tree:")
	fmt.Print(tr.String())

	fmt.Println("height:", tr.Height(), "nodes:", tr.Len())
}

func checkSizes(num, deletes int) error {
	if num < 0 || deletes < 0 {
		return fmt.Errorf("-n and -d must not be negative, got -n %d -d %d", num, deletes)
	}
	if deletes > num {
		return fmt.Errorf("cannot delete %d of %d nodes", deletes, num)
	}
	return nil
}
