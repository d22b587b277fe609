package service

import "testing"

func TestScoreFor_ConcreteLadders(t *testing.T) {
	tests := []struct {
		totalItems int
		want       []int
	}{
		{1, []int{10}},
		{2, []int{11, 9}},
		{3, []int{11, 10, 9}},
		{4, []int{12, 11, 9, 8}},
		{5, []int{12, 11, 10, 9, 8}},
		{6, []int{13, 12, 11, 9, 8, 7}},
	}

	for _, tt := range tests {
		for rank := 1; rank <= tt.totalItems; rank++ {
			got := ScoreFor(rank, tt.totalItems)
			want := tt.want[rank-1]
			if got != want {
				t.Errorf("ScoreFor(%d, %d) = %d, want %d", rank, tt.totalItems, got, want)
			}
		}
	}
}

func TestScoreFor_MeanIsAlwaysTen(t *testing.T) {
	// The ladder is centered so every user's own list averages exactly 10,
	// regardless of how many videos they were eligible to rank.
	for n := 1; n <= 50; n++ {
		sum := 0
		for rank := 1; rank <= n; rank++ {
			sum += ScoreFor(rank, n)
		}
		if sum != 10*n {
			t.Errorf("sum of scores for n=%d is %d, want %d (mean 10)", n, sum, 10*n)
		}
	}
}

func TestScoreFor_StrictlyDecreasingInRank(t *testing.T) {
	for n := 2; n <= 50; n++ {
		prev := ScoreFor(1, n)
		for rank := 2; rank <= n; rank++ {
			cur := ScoreFor(rank, n)
			if cur >= prev {
				t.Errorf("ScoreFor(%d, %d) = %d, not below ScoreFor(%d, %d) = %d",
					rank, n, cur, rank-1, n, prev)
			}
			prev = cur
		}
	}
}

func TestScoreFor_RankOneIsBest(t *testing.T) {
	for n := 1; n <= 20; n++ {
		best := ScoreFor(1, n)
		for rank := 2; rank <= n; rank++ {
			if ScoreFor(rank, n) > best {
				t.Errorf("rank %d beats rank 1 for n=%d", rank, n)
			}
		}
	}
}

func TestScoreFor_EvenGapStraddlesMidpoint(t *testing.T) {
	// Even counts skip 10 entirely: the two middle ranks score 11 and 9.
	for n := 2; n <= 50; n += 2 {
		mid := n / 2
		if got := ScoreFor(mid, n); got != 11 {
			t.Errorf("ScoreFor(%d, %d) = %d, want 11", mid, n, got)
		}
		if got := ScoreFor(mid+1, n); got != 9 {
			t.Errorf("ScoreFor(%d, %d) = %d, want 9", mid+1, n, got)
		}
	}
}
