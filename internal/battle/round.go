package battle

// rollHits converts an army's composition into its total hits for the
// round: one binomial draw per category, trials = count, p = attack chance.
func rollHits(src Source, attacker Army, catalog Catalog) int {
	total := 0
	for _, name := range attacker.Names() {
		total += binomial(src, attacker[name], catalog.attackProb(name))
	}
	return total
}

// distributeHits spreads totalHits across the defender's categories in
// proportion to live counts, one exact multinomial draw. A dead defender or
// a non-positive total yields an empty assignment with no randomness
// consumed. Categories that draw zero are omitted.
func distributeHits(src Source, defender Army, totalHits int) map[string]int {
	assigned := map[string]int{}
	names := defender.Names()
	if len(names) == 0 || totalHits <= 0 {
		return assigned
	}
	weights := make([]int, len(names))
	for i, name := range names {
		weights[i] = defender[name]
	}
	for i, count := range multinomial(src, totalHits, weights) {
		if count > 0 {
			assigned[names[i]] = count
		}
	}
	return assigned
}

// resolveDefense runs the defense trials for each assigned category and
// returns the hits that penetrate: trials = assigned hits, p = 1 - defense
// chance. A category that deflects everything (defense 100) consumes no
// randomness. Zero-penetration categories are omitted.
func resolveDefense(src Source, assigned map[string]int, catalog Catalog) map[string]int {
	kills := map[string]int{}
	for _, name := range sortedKeys(assigned) {
		hits := assigned[name]
		if hits <= 0 {
			continue
		}
		if pen := binomial(src, hits, catalog.penetrationProb(name)); pen > 0 {
			kills[name] = pen
		}
	}
	return kills
}

// applyCasualties subtracts kills from the army, clamping each category to
// what is actually standing and deleting categories that reach zero.
// Overkill is absorbed, never banked. The returned map holds the applied
// (clamped) casualties, which is what reports must show.
func applyCasualties(army Army, kills map[string]int) map[string]int {
	applied := map[string]int{}
	for _, name := range sortedKeys(kills) {
		want := kills[name]
		if want <= 0 {
			continue
		}
		have := army[name]
		if have <= 0 {
			continue
		}
		actual := want
		if actual > have {
			actual = have
		}
		army[name] = have - actual
		if army[name] <= 0 {
			delete(army, name)
		}
		applied[name] = actual
	}
	return applied
}
