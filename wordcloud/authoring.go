package wordcloud

// Source says where a concern (grouping or tiers) comes from.
type Source int

const (
	// Heuristic derives the value from timing gaps or importance scores.
	Heuristic Source = iota
	// Explicit takes the value from authoring hints on the words.
	Explicit
)

func (s Source) String() string {
	if s == Explicit {
		return "explicit"
	}
	return "heuristic"
}

// Authoring records, once for a whole word list, whether grouping and tiers
// are authored or computed.
//
// A single labeled word switches its concern to Explicit for the entire list.
// Unlabeled words then get defaults: tier normal, and the group of the
// nearest preceding labeled word (or the first following one when no
// labeled word precedes it).
type Authoring struct {
	Groups Source
	Tiers  Source
}

// ResolveAuthoring inspects words for tier and groupId hints.
func ResolveAuthoring(words []WordTiming) Authoring {
	var a Authoring
	for _, w := range words {
		if w.GroupID != nil {
			a.Groups = Explicit
		}
		if w.Tier != "" {
			a.Tiers = Explicit
		}
	}
	return a
}

// resolveGroupIDs returns a group id for every word, filling unlabeled words
// from their neighbours. It must only be called when at least one word is
// labeled.
func resolveGroupIDs(words []WordTiming) []int {
	ids := make([]int, len(words))

	first := -1
	for i, w := range words {
		if w.GroupID != nil {
			first = i
			break
		}
	}
	if first < 0 {
		return ids
	}

	current := *words[first].GroupID
	for i, w := range words {
		if w.GroupID != nil {
			current = *w.GroupID
		}
		ids[i] = current
	}
	return ids
}

// authoredTier is the tier used for a word on the explicit path.
func authoredTier(w WordTiming) Tier {
	if w.Tier.Valid() {
		return w.Tier
	}
	return TierNormal
}
