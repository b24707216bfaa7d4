// SPDX-License-Identifier: Apache-2.0

package memkit

// Hash reduces key to a bucket index in [0, modulus) using the djb2
// multiplicative string hash (seed 5381, multiplier 33). Deterministic and
// unseeded: suitable for identifier and config-key workloads, not for
// adversarial input.
func Hash(key string, modulus int) int {
	if modulus <= 0 {
		panic("memkit: hash modulus must be positive")
	}
	h := uint64(5381)
	for i := 0; i < len(key); i++ {
		h = h*33 + uint64(key[i])
	}
	return int(h % uint64(modulus))
}
