package language

import "github.com/katalvlaran/lvlearnta/condition"

// Concat builds the elementary language of a forward prefix followed by a
// backward suffix: the word is the prefix's word followed by the suffix's
// word, and the condition is their concatenation (condition.Concatenate),
// matching the table's `prefix + suffix` row-filling queries.
func Concat(p Forward, s Backward) (ElementaryLanguage, error) {
	word := make([]string, 0, len(p.Word)+len(s.Word))
	word = append(word, p.Word...)
	word = append(word, s.Word...)
	cond, err := condition.Concatenate(p.Cond, s.Cond)
	if err != nil {
		return ElementaryLanguage{}, err
	}
	return ElementaryLanguage{Word: word, Cond: cond}, nil
}
