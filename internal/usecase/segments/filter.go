package segments

import "idmlx/internal/domain"

// Visible projects a full segment list through a filter. The
// untranslated view additionally hides segments without source text:
// they are not actionable, though they still count in "all".
func Visible(list []domain.Segment, f domain.Filter) []domain.Segment {
	switch f {
	case domain.FilterTranslated:
		out := make([]domain.Segment, 0, len(list))
		for _, s := range list {
			if s.Translated() {
				out = append(out, s)
			}
		}
		return out
	case domain.FilterUntranslated:
		out := make([]domain.Segment, 0, len(list))
		for _, s := range list {
			if !s.Translated() && s.Translatable() {
				out = append(out, s)
			}
		}
		return out
	default:
		out := make([]domain.Segment, len(list))
		copy(out, list)
		return out
	}
}

// CorrectFilter returns the filter to use after the statistics changed.
// A non-"all" filter whose set went empty falls over to the other
// category when that one is populated, else to "all". "all" itself is
// never corrected, and an empty document leaves the filter alone.
func CorrectFilter(f domain.Filter, st domain.Stats) domain.Filter {
	if st.Total == 0 {
		return f
	}
	switch f {
	case domain.FilterTranslated:
		if st.Translated == 0 {
			if st.Untranslated > 0 {
				return domain.FilterUntranslated
			}
			return domain.FilterAll
		}
	case domain.FilterUntranslated:
		if st.Untranslated == 0 {
			if st.Translated > 0 {
				return domain.FilterTranslated
			}
			return domain.FilterAll
		}
	}
	return f
}
