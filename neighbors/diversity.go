// SPDX-License-Identifier: MIT
package neighbors

// diversitySelect runs the α-relaxed RNG diversity rule over merged (which
// must already be sorted descending by score), selecting at most maxDegree
// entries.
func diversitySelect(merged []Entry, maxDegree int, alphaMax float32, sim SimilarityFunc) []Entry {
	selected := make([]bool, len(merged))
	count := 0

	for alpha := float32(1.0); alpha <= alphaMax+1e-6; alpha += 0.2 {
		for i, cand := range merged {
			if count == maxDegree {
				break
			}
			if selected[i] {
				continue
			}

			ok := true
			for j, other := range merged {
				if !selected[j] || other.Node == cand.Node {
					continue
				}
				if sim(cand.Node, other.Node) > cand.Score*alpha {
					ok = false
					break
				}
			}
			if ok {
				selected[i] = true
				count++
			}
		}
		if count == maxDegree {
			break
		}
	}

	out := make([]Entry, 0, count)
	for i, e := range merged {
		if selected[i] {
			out = append(out, e)
		}
	}
	return out
}

// enforceMaxDegree implements "remove least diverse": walking from the tail
// towards the head, an entry is dropped if some closer-to-owner neighbor is
// too similar to it relative to its own score; any remainder over
// maxDegree is dropped from the tail.
func enforceMaxDegree(entries []Entry, maxDegree int, alphaMax float32, sim SimilarityFunc) []Entry {
	current := append([]Entry(nil), entries...)

	for len(current) > maxDegree {
		removedAny := false
		for i := len(current) - 1; i >= 1; i-- {
			e1 := current[i]
			prune := false
			for j := 0; j < i; j++ {
				if sim(e1.Node, current[j].Node) > e1.Score*alphaMax {
					prune = true
					break
				}
			}
			if prune {
				current = append(current[:i], current[i+1:]...)
				removedAny = true
				break
			}
		}
		if !removedAny {
			break
		}
	}

	if len(current) > maxDegree {
		current = current[:maxDegree]
	}
	return current
}
