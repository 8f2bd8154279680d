// Package asciiscan implements the matcher's precondition gate: a line must
// contain no byte >= 0x80 before a Program is evaluated against it. It
// mirrors the reference engine's simd package in structure — a CPU-feature
// flag gates a vectorizable fast path, with a portable scalar fallback for
// short inputs and non-AVX2 hardware — without carrying the reference
// engine's actual assembly kernels (see DESIGN.md).
package asciiscan

import "golang.org/x/sys/cpu"

// hasAVX2 records whether this CPU supports 256-bit AVX2 instructions. It
// gates the SWAR fast path below: the same feature the reference engine's
// simd package checks before dispatching to its AVX2 kernel, but here the
// "fast path" taken when the feature is present is a pure-Go 8-byte-at-once
// scan rather than a hand-written assembly kernel.
var hasAVX2 = cpu.X86.HasAVX2

// swarThreshold is the input length below which the byte-by-byte scalar
// loop outperforms the chunked SWAR loop's setup cost.
const swarThreshold = 8

const highBits = uint64(0x8080808080808080)

// AllASCII reports whether every byte of s is < 0x80. It is the gate
// Match runs before evaluating a Program against line; a false result
// means the caller should fail with ErrNonASCIILine rather than proceed.
func AllASCII(s string) bool {
	if len(s) < swarThreshold || !hasAVX2 {
		return allASCIIScalar(s)
	}
	return allASCIISWAR(s)
}

// allASCIIScalar checks one byte at a time. Used for short inputs
// regardless of CPU features, and as the only path on CPUs without AVX2.
func allASCIIScalar(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// allASCIISWAR processes 8 bytes at a time using the SIMD-within-a-register
// technique: AND each 8-byte chunk against a mask with the high bit of every
// byte set, and a nonzero result means some byte in the chunk is >= 0x80.
func allASCIISWAR(s string) bool {
	i := 0
	for ; i+8 <= len(s); i += 8 {
		chunk := uint64(s[i]) | uint64(s[i+1])<<8 | uint64(s[i+2])<<16 | uint64(s[i+3])<<24 |
			uint64(s[i+4])<<32 | uint64(s[i+5])<<40 | uint64(s[i+6])<<48 | uint64(s[i+7])<<56
		if chunk&highBits != 0 {
			return false
		}
	}
	return allASCIIScalar(s[i:])
}
