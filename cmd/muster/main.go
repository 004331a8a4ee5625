package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"skirmish/internal/muster"
)

func main() {
	var costsArg, propsArg string
	var share float64
	var resourceLimit, resourceIndex int
	flag.StringVar(&costsArg, "costs", "1,3,2", "per-unit costs of the paid types, comma separated")
	flag.StringVar(&propsArg, "props", "3,2,1", "target proportions of the paid types, comma separated")
	flag.Float64Var(&share, "share", 0.40, "free levy share of the total (0..1)")
	flag.IntVar(&resourceLimit, "resource", -1, "resource cap for one paid type (-1 means uncapped)")
	flag.IntVar(&resourceIndex, "resource-index", 2, "which paid type consumes the resource (1-based)")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: muster [flags] <budget> <total-units>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	budget, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		panic(err)
	}
	total, err := strconv.Atoi(flag.Arg(1))
	if err != nil {
		panic(err)
	}

	costs, err := parseInts(costsArg)
	if err != nil {
		panic(err)
	}
	props, err := parseInts(propsArg)
	if err != nil {
		panic(err)
	}
	if resourceIndex < 1 {
		resourceIndex = 1
	}

	plan, err := muster.Allocate(muster.Request{
		Budget:        budget,
		TotalUnits:    total,
		Costs:         costs,
		Props:         props,
		FreeShare:     share,
		ResourceLimit: resourceLimit,
		ResourceIndex: resourceIndex - 1,
	})
	if err != nil {
		panic(err)
	}

	raw, _ := json.MarshalIndent(plan, "", "  ")
	fmt.Println(string(raw))
}

func parseInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad int list %q: %w", s, err)
		}
		out = append(out, v)
	}
	return out, nil
}
