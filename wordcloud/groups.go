package wordcloud

import (
	"slices"
)

// DetectGroups splits a word timeline into screens.
//
// When any word carries a groupId, words are partitioned by id in ascending
// id order and the gap and size limits are ignored. Otherwise a new group
// starts whenever the silence before a word reaches gapThreshold or the
// current group already holds maxWordsPerGroup words. maxWordsPerGroup <= 0
// means no size limit.
func DetectGroups(words []WordTiming, gapThreshold float64, maxWordsPerGroup int) []WordGroup {
	if len(words) == 0 {
		return []WordGroup{}
	}
	if ResolveAuthoring(words).Groups == Explicit {
		return groupsByID(words)
	}
	return groupsByGap(words, gapThreshold, maxWordsPerGroup)
}

func groupsByID(words []WordTiming) []WordGroup {
	ids := resolveGroupIDs(words)

	members := make(map[int][]WordTiming)
	var order []int
	for i, w := range words {
		id := ids[i]
		if _, ok := members[id]; !ok {
			order = append(order, id)
		}
		members[id] = append(members[id], w)
	}
	slices.Sort(order)

	groups := make([]WordGroup, 0, len(order))
	for _, id := range order {
		groups = append(groups, newWordGroup(members[id]))
	}
	return groups
}

func groupsByGap(words []WordTiming, gapThreshold float64, maxWordsPerGroup int) []WordGroup {
	var groups []WordGroup
	start := 0
	for i := 1; i < len(words); i++ {
		gap := words[i].Start - words[i-1].End
		full := maxWordsPerGroup > 0 && i-start >= maxWordsPerGroup
		if gap >= gapThreshold || full {
			groups = append(groups, newWordGroup(slices.Clone(words[start:i])))
			start = i
		}
	}
	return append(groups, newWordGroup(slices.Clone(words[start:])))
}
