// Package muster plans army composition under a budget: a free levy share
// plus paid unit types raised in fixed proportions, with an optional cap on
// one resource-hungry type. It is a standalone planning tool and shares
// nothing with the combat engine.
package muster

import "fmt"

// Request describes one allocation problem. ResourceLimit < 0 means the
// resource-bound type is uncapped.
type Request struct {
	Budget        int
	TotalUnits    int
	Costs         []int   // per-unit cost of each paid type
	Props         []int   // target proportions of the paid types, all > 0
	FreeShare     float64 // fraction of TotalUnits raised as free levy
	ResourceLimit int
	ResourceIndex int // which paid type consumes the limited resource
}

// DefaultRequest mirrors the planner's traditional defaults: three paid
// types at costs 1,3,2 in proportions 3:2:1, a 40% free levy, and resource
// accounting on the second type with no cap.
func DefaultRequest(budget, totalUnits int) Request {
	return Request{
		Budget:        budget,
		TotalUnits:    totalUnits,
		Costs:         []int{1, 3, 2},
		Props:         []int{3, 2, 1},
		FreeShare:     0.40,
		ResourceLimit: -1,
		ResourceIndex: 1,
	}
}

// Plan is the result of an allocation. ResourceLimit and ResourceLeft are
// -1 when the request carried no cap.
type Plan struct {
	Free          int   `json:"free_units"`
	Paid          []int `json:"paid_units"`
	TotalCost     int   `json:"total_cost"`
	PaidUsed      int   `json:"paid_units_used"`
	TotalUsed     int   `json:"total_units_used"`
	Unused        int   `json:"units_unused"`
	BudgetLeft    int   `json:"budget_left"`
	ResourceUsed  int   `json:"resource_used"`
	ResourceLeft  int   `json:"resource_left"`
	ResourceLimit int   `json:"resource_limit"`
}

// Allocate fills the request greedily: the free levy first, then as many
// full proportion packages as budget, unit cap and resource cap allow, then
// single units following the proportion sequence until nothing more fits.
func Allocate(req Request) (*Plan, error) {
	if len(req.Costs) == 0 || len(req.Costs) != len(req.Props) {
		return nil, fmt.Errorf("muster: costs and props must be non-empty and equal length")
	}
	for _, p := range req.Props {
		if p <= 0 {
			return nil, fmt.Errorf("muster: proportions must be positive")
		}
	}
	if req.ResourceIndex < 0 || req.ResourceIndex >= len(req.Props) {
		return nil, fmt.Errorf("muster: resource index %d out of range", req.ResourceIndex)
	}

	share := req.FreeShare
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}
	free := int(share * float64(req.TotalUnits))
	paidCap := req.TotalUnits - free
	if paidCap < 0 {
		paidCap = 0
	}

	packSize := 0
	packCost := 0
	for i, p := range req.Props {
		packSize += p
		packCost += req.Costs[i] * p
	}

	limits := []int{0, paidCap / packSize}
	if packCost > 0 {
		limits[0] = req.Budget / packCost
	}
	if req.ResourceLimit >= 0 {
		limits = append(limits, req.ResourceLimit/req.Props[req.ResourceIndex])
	}
	full := limits[0]
	for _, l := range limits[1:] {
		if l < full {
			full = l
		}
	}

	paid := make([]int, len(req.Props))
	for i, p := range req.Props {
		paid[i] = full * p
	}
	budgetLeft := req.Budget - full*packCost
	unitsLeft := paidCap - full*packSize
	resourceUsed := paid[req.ResourceIndex]

	// Top-up order repeats each type per its proportion, e.g. props 3,2,1
	// give the sequence 0,0,0,1,1,2.
	var seq []int
	for i, p := range req.Props {
		for k := 0; k < p; k++ {
			seq = append(seq, i)
		}
	}
	cheapest := req.Costs[0]
	for _, c := range req.Costs[1:] {
		if c < cheapest {
			cheapest = c
		}
	}

	changed := true
	for changed && unitsLeft > 0 && budgetLeft >= cheapest {
		changed = false
		for _, i := range seq {
			if req.ResourceLimit >= 0 && i == req.ResourceIndex && resourceUsed >= req.ResourceLimit {
				continue
			}
			if unitsLeft > 0 && budgetLeft >= req.Costs[i] {
				paid[i]++
				unitsLeft--
				budgetLeft -= req.Costs[i]
				if i == req.ResourceIndex {
					resourceUsed++
				}
				changed = true
			}
			if unitsLeft == 0 || budgetLeft < cheapest {
				break
			}
		}
	}

	totalCost := 0
	paidUsed := 0
	for i, q := range paid {
		totalCost += req.Costs[i] * q
		paidUsed += q
	}

	plan := &Plan{
		Free:          free,
		Paid:          paid,
		TotalCost:     totalCost,
		PaidUsed:      paidUsed,
		TotalUsed:     paidUsed + free,
		Unused:        req.TotalUnits - paidUsed - free,
		BudgetLeft:    req.Budget - totalCost,
		ResourceUsed:  paid[req.ResourceIndex],
		ResourceLeft:  -1,
		ResourceLimit: -1,
	}
	if req.ResourceLimit >= 0 {
		plan.ResourceLimit = req.ResourceLimit
		if left := req.ResourceLimit - plan.ResourceUsed; left > 0 {
			plan.ResourceLeft = left
		} else {
			plan.ResourceLeft = 0
		}
	}
	return plan, nil
}
