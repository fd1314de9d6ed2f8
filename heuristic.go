package archiver

import (
	"github.com/cespare/xxhash/v2"

	"github.com/Seraph-coder/lab-2-archiver-program/format"
)

const (
	// autoSelectRunThreshold: a longest run above this picks RLE.
	autoSelectRunThreshold = 10
	// autoSelectTrigramSize is the substring width of the dictionary test.
	autoSelectTrigramSize = 3
)

// AutoSelect inspects data and chooses a codec. The checks run in a fixed
// order and the first match wins; the order and thresholds are part of the
// observable contract:
//
//  1. Longest run of identical bytes > 10: MethodRLE.
//  2. Distinct length-3 substrings fewer than half the data length:
//     MethodLZW.
//  3. Otherwise: MethodHuffman.
//
// Inputs too short to trip either test, including the empty one, fall
// through to MethodHuffman.
func AutoSelect(data []byte) format.Method {
	if longestRun(data) > autoSelectRunThreshold {
		return format.MethodRLE
	}
	if distinctTrigrams(data) < len(data)/2 {
		return format.MethodLZW
	}

	return format.MethodHuffman
}

func longestRun(data []byte) int {
	if len(data) == 0 {
		return 0
	}

	maxRun, curRun := 1, 1
	for i := 1; i < len(data); i++ {
		if data[i] == data[i-1] {
			curRun++
		} else {
			curRun = 1
		}
		if curRun > maxRun {
			maxRun = curRun
		}
	}

	return maxRun
}

// distinctTrigrams counts distinct 3-byte windows, set membership keyed by
// xxHash64 of the window. A hash collision could undercount by one, which
// is harmless for a selection heuristic and keeps the set allocation-free
// per window.
func distinctTrigrams(data []byte) int {
	if len(data) < autoSelectTrigramSize {
		return 0
	}

	seen := make(map[uint64]struct{}, len(data))
	for i := 0; i+autoSelectTrigramSize <= len(data); i++ {
		seen[xxhash.Sum64(data[i:i+autoSelectTrigramSize])] = struct{}{}
	}

	return len(seen)
}
