package etrie

import "sort"

// search enumerates every way to transform remaining into some stored
// string reachable from n, charging one edit for each delete, insert,
// substitute, or adjacent transpose, and emitting a Match into out for
// every stored string found with at most max total edits.
//
// path holds the characters already consumed from the Trie on the way to
// n; edits holds the edit count charged so far. At every call either
// edits strictly increases, remaining strictly shrinks, or n descends to
// a strict child, so the recursion is finite: max bounds edits, and the
// query and the Trie are both finite.
func search[V any](path []rune, remaining []rune, edits, max int, n *node[V], out *[]Match[V]) {
	if len(remaining) == 0 {
		emptyTrie := len(n.children) == 0 && n.value == nil
		if emptyTrie {
			return
		}
		if n.value != nil {
			*out = append(*out, Match[V]{String: string(path), Edits: edits, Value: *n.value})
		}
		if len(n.children) > 0 {
			// Trailing inserts: the query is exhausted but the Trie
			// continues, so the only way to reach a terminal from here
			// is to insert the rest of the stored string.
			for _, k := range sortedKeys(n) {
				if edits+1 <= max {
					search(append(path, k), nil, edits+1, max, n.children[k], out)
				}
			}
		}
		return
	}

	h, t := remaining[0], remaining[1:]

	if edits == max {
		// At the budget, any further edit would exceed it, so the only
		// move left that can still reach a match is consuming h against
		// a matching child.
		if child, ok := n.children[h]; ok {
			search(append(path, h), t, edits, max, child, out)
		}
		return
	}

	// Delete: drop h from the query without moving in the Trie.
	search(path, t, edits+1, max, n, out)

	for _, k := range sortedKeys(n) {
		child := n.children[k]
		if k != h {
			// Substitute: replace h with a character the Trie can
			// actually follow.
			search(append(path, k), t, edits+1, max, child, out)
		}
		// Insert: add k ahead of h without consuming h yet.
		search(append(path, k), remaining, edits+1, max, child, out)
	}

	if len(t) > 0 {
		h2, t2 := t[0], t[1:]
		if h2 != h {
			// Transpose: swap h and the next query character.
			swapped := make([]rune, 0, len(remaining))
			swapped = append(swapped, h2, h)
			swapped = append(swapped, t2...)
			search(path, swapped, edits+1, max, n, out)
		}
	}

	// No-change: consume h against a matching child without charging an
	// edit.
	if child, ok := n.children[h]; ok {
		search(append(path, h), t, edits, max, child, out)
	}
}

// sortedKeys returns n's child characters in ascending order, so that
// substitute and insert moves are explored deterministically.
func sortedKeys[V any](n *node[V]) []rune {
	keys := make([]rune, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
