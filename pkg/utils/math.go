// pkg/utils/math.go
package utils

// FloorDiv returns a / b rounded towards negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns the remainder that pairs with FloorDiv; its sign follows b.
func FloorMod(a, b int) int {
	return a - FloorDiv(a, b)*b
}
