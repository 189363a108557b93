// Package core provides fundamental types and utilities shared by the game
// and its hosts. It contains no external dependencies (especially no Bubble
// Tea) to keep game logic pure and testable.
package core

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
