package handanalyzer

// Strength is a hand strength vector: [category, tiebreak...]
// Vectors compare lexicographically and a missing trailing position counts as zero.
type Strength []int

// Compare returns -1 if s is weaker than other, 1 if it is stronger, and 0 on a tie
func (s Strength) Compare(other Strength) int {
	n := len(s)
	if len(other) > n {
		n = len(other)
	}

	for i := 0; i < n; i++ {
		a, b := s.at(i), other.at(i)
		if a < b {
			return -1
		} else if a > b {
			return 1
		}
	}

	return 0
}

// Equal returns true if both vectors tie
func (s Strength) Equal(other Strength) bool {
	return s.Compare(other) == 0
}

func (s Strength) at(i int) int {
	if i < len(s) {
		return s[i]
	}

	return 0
}

// Hand returns the category of the vector
func (s Strength) Hand() Hand {
	return Hand(s.at(0))
}
