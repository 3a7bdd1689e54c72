package segments

import "idmlx/internal/domain"

type key struct {
	story string
	index int
}

func keyOf(s domain.Segment) key { return key{s.StoryPath, s.Index} }

// Merge reconciles a set of keyed updates into a full ordered segment
// list. The result has the same length and key order as current; each
// position is replaced by the update with the same (storyPath, index)
// when one exists, otherwise kept as-is. Updates whose key is not in
// current are ignored: the canonical list never grows or reorders here.
// Pure function, idempotent.
func Merge(current, updates []domain.Segment) []domain.Segment {
	out := make([]domain.Segment, len(current))
	if len(updates) == 0 {
		copy(out, current)
		return out
	}
	byKey := make(map[key]domain.Segment, len(updates))
	for _, u := range updates {
		byKey[keyOf(u)] = u
	}
	for i, s := range current {
		if u, ok := byKey[keyOf(s)]; ok {
			out[i] = u
		} else {
			out[i] = s
		}
	}
	return out
}

// Stats counts translated segments in a full list. Untranslated is the
// remainder, so total == translated + untranslated always holds.
func Stats(list []domain.Segment) domain.Stats {
	st := domain.Stats{Total: len(list)}
	for _, s := range list {
		if s.Translated() {
			st.Translated++
		}
	}
	st.Untranslated = st.Total - st.Translated
	return st
}
