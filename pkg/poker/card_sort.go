package poker

// sortByRankDesc orders ranks by how many cards hold them, then by rank, both descending
type sortByRankDesc struct {
	ranks  []int
	counts map[int]int
}

func (s sortByRankDesc) Len() int {
	return len(s.ranks)
}

func (s sortByRankDesc) Less(i, j int) bool {
	ci, cj := s.counts[s.ranks[i]], s.counts[s.ranks[j]]
	if ci != cj {
		return ci > cj
	}

	return s.ranks[i] > s.ranks[j]
}

func (s sortByRankDesc) Swap(i, j int) {
	s.ranks[i], s.ranks[j] = s.ranks[j], s.ranks[i]
}
