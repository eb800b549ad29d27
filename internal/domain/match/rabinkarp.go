package match

import "math/bits"

// Rolling hash parameters: base 256 over the Mersenne prime 2^61 - 1.
// The modulus only decides how often verification runs on colliding
// windows; spurious hits are always rejected by character comparison.
const (
	rkBase uint64 = 256
	rkMod  uint64 = (1 << 61) - 1
)

// mulMod returns a*b mod rkMod via a 128-bit intermediate product, so the
// rolling arithmetic never overflows and never goes negative.
func mulMod(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, rkMod)
	return rem
}

// RabinKarpSearch slides a fixed-width window over text, comparing its
// rolling hash against the pattern hash. Each window costs one comparison
// for the hash test; on hash equality the window is verified character by
// character, one comparison per character checked. An occurrence needs
// both a successful verification and an approved word boundary.
func RabinKarpSearch(text, pattern []rune) Result {
	n, m := len(text), len(pattern)
	if m == 0 || n < m {
		return Result{}
	}

	var patHash, winHash uint64
	for i := 0; i < m; i++ {
		patHash = (mulMod(patHash, rkBase) + uint64(pattern[i])) % rkMod
		winHash = (mulMod(winHash, rkBase) + uint64(text[i])) % rkMod
	}

	// base^(m-1) mod rkMod, for removing the leading character.
	power := uint64(1)
	for i := 0; i < m-1; i++ {
		power = mulMod(power, rkBase)
	}

	var res Result
	for i := 0; ; i++ {
		res.Comparisons++
		if winHash == patHash && rkVerify(text, pattern, i, &res) && isWordBoundary(text, i, i+m) {
			res.Occurrences++
		}
		if i == n-m {
			break
		}
		// Roll: drop text[i], append text[i+m]. rkMod is added before the
		// subtraction so the intermediate value cannot underflow.
		lead := mulMod(uint64(text[i]), power)
		winHash = (winHash + rkMod - lead) % rkMod
		winHash = mulMod(winHash, rkBase)
		winHash = (winHash + uint64(text[i+m])) % rkMod
	}
	return res
}

// rkVerify rejects spurious hash collisions by comparing the window at
// offset i against the pattern in full.
func rkVerify(text, pattern []rune, i int, res *Result) bool {
	for j := range pattern {
		res.Comparisons++
		if text[i+j] != pattern[j] {
			return false
		}
	}
	return true
}
