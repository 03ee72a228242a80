package signal

// Rotate circularly rotates data in place by n positions, so that
// data[i] takes the value previously at index (i+n) mod len(data).
// Negative n rotates the other way.
func Rotate[T any](data []T, n int) {
	size := len(data)
	if size == 0 {
		return
	}

	n %= size
	if n < 0 {
		n += size
	}

	if n == 0 {
		return
	}

	reverse(data[:n])
	reverse(data[n:])
	reverse(data)
}

func reverse[T any](data []T) {
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
}
