package narrowway

// rotateRight moves s[i] to s[(i+k) mod n] using three reversals.
func rotateRight[T any](s []T, k int) {
	n := len(s)
	if n == 0 {
		return
	}
	k %= n
	if k < 0 {
		k += n
	}
	if k == 0 {
		return
	}
	reverse(s[:n-k])
	reverse(s[n-k:])
	reverse(s)
}

// rotateLeft moves s[i] to s[(i-k) mod n].
func rotateLeft[T any](s []T, k int) {
	if len(s) == 0 {
		return
	}
	rotateRight(s, len(s)-k%len(s))
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
