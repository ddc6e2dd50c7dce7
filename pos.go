package minpairs

// POSTag is a selectable part-of-speech tag with its display label.
type POSTag struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// POSGroup is a switchable group of tags.
type POSGroup struct {
	Name  string   `json:"name"`
	Label string   `json:"label"`
	Tags  []POSTag `json:"tags"`
}

// DefaultPOSGroups are the tag groups of the Sejong tag set covered by
// the Korean lexicon.
var DefaultPOSGroups = []POSGroup{
	{
		Name:  "nouns",
		Label: "Nouns (명사)",
		Tags: []POSTag{
			{Code: "NNG", Label: "Common nouns (일반명사)"},
			{Code: "NNP", Label: "Proper nouns (고유명사)"},
			{Code: "NR", Label: "Counting words (수사)"},
			{Code: "NP", Label: "Pronouns (대명사)"},
			{Code: "NNB", Label: "Bound nouns (의존명사)"},
		},
	},
	{
		Name:  "adverbs",
		Label: "Adverbs (부사)",
		Tags: []POSTag{
			{Code: "MAJ", Label: "Conjunctions (접속부사)"},
			{Code: "MAG", Label: "Other adverbs (일반부사)"},
			{Code: "IC", Label: "Interjections (감탄사)"},
		},
	},
}

// AllowedPOS returns the tags of every group named in enabled, in group
// order. A group that is switched off contributes no tags, so switching
// every group off yields an empty, non-nil set that lets nothing through.
func AllowedPOS(groups []POSGroup, enabled map[string]bool) []string {
	tags := make([]string, 0)
	for _, g := range groups {
		if !enabled[g.Name] {
			continue
		}
		for _, t := range g.Tags {
			tags = append(tags, t.Code)
		}
	}
	return tags
}
