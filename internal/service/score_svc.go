package service

// ScoreFor maps a 1-based rank within a list of totalItems ranked videos to
// an integer score. The ladder is symmetric around 10 so that the mean score
// across any single user's full ranking is exactly 10, whatever its length:
//
//	n odd:  mid = ceil(n/2); score = 10 + (mid - rank)
//	n even: mid = n/2; ranks <= mid get 11 + (mid - rank),
//	        the rest get 9 - (rank - mid - 1)
//
// e.g. n=4 yields 12, 11, 9, 8 for ranks 1..4. Rank 1 is always the highest
// score. totalItems is the length of the individual user's own ranking, not
// the catalog size — cast exclusion means users rank different subsets.
//
// Callers must pass 1 <= rank <= totalItems; out-of-domain input is a
// contract violation, not a recoverable case.
func ScoreFor(rank, totalItems int) int {
	if totalItems == 1 {
		return 10
	}

	if totalItems%2 == 1 {
		mid := (totalItems + 1) / 2
		return 10 + (mid - rank)
	}

	mid := totalItems / 2
	if rank <= mid {
		return 11 + (mid - rank)
	}
	return 9 - (rank - mid - 1)
}
