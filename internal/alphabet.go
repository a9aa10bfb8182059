package internal

// LowercaseAlphabet returns the default filler alphabet, 'a' through 'z'.
func LowercaseAlphabet() []rune {
	letters := make([]rune, 0, 26)
	for r := 'a'; r <= 'z'; r++ {
		letters = append(letters, r)
	}
	return letters
}

// UniqueLetters returns the deduplicated set of runes appearing anywhere in
// words, in first-seen order.
func UniqueLetters(words []string) []rune {
	seen := make(map[rune]bool)

	var letters []rune
	for _, word := range words {
		for _, r := range word {
			if seen[r] {
				continue
			}
			seen[r] = true
			letters = append(letters, r)
		}
	}
	return letters
}
