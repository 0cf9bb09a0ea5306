package fluid

import "strconv"

// parseIndexedKey splits a parameter name like "rho3" into ("rho", 3).
// Used by the table and polynomial fluid kinds whose coefficients are
// passed as fun.Params (name, value) pairs rather than native slices.
func parseIndexedKey(key string) (kind string, idx int, ok bool) {
	i := len(key)
	for i > 0 && key[i-1] >= '0' && key[i-1] <= '9' {
		i--
	}
	if i == len(key) {
		return "", 0, false
	}
	kind = key[:i]
	n, err := strconv.Atoi(key[i:])
	if err != nil {
		return "", 0, false
	}
	return kind, n, true
}
