package schedule

// NextPowerOfTwo returns the smallest power of two >= n. Returns 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	power := 1
	for power < n {
		power *= 2
	}
	return power
}

// ByesNeeded is the number of empty bracket slots required to pad a roster of
// size n to a full elimination bracket.
func ByesNeeded(n int) int {
	return NextPowerOfTwo(n) - n
}

// TotalRounds is the number of elimination rounds for a roster of size n,
// with a minimum of one round.
func TotalRounds(n int) int {
	rounds := 0
	for size := NextPowerOfTwo(n); size > 1; size /= 2 {
		rounds++
	}
	if rounds < 1 {
		return 1
	}
	return rounds
}
