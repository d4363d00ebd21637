package id

import (
	"strings"
	"testing"
)

// FuzzGenerate tests the Generate function
func FuzzGenerate(f *testing.F) {
	lengths := []int{0, 1, 2, 5, 8, 12, 20, 50, 100}
	for _, l := range lengths {
		f.Add(l)
	}

	f.Fuzz(func(t *testing.T, length int) {
		if length > 1000 {
			t.Skip("unreasonably large length")
		}

		result, err := Generate(length)
		if err != nil {
			t.Errorf("Generate(%d) returned error: %v", length, err)
			return
		}

		// length <= 0 falls back to the default suffix length
		expectedLen := length
		if expectedLen <= 0 {
			expectedLen = SuffixLength
		}

		if len(result) != expectedLen {
			t.Errorf("Generate(%d) returned string of length %d, expected %d", length, len(result), expectedLen)
		}

		for _, c := range result {
			if !strings.ContainsRune(alphabet, c) {
				t.Errorf("Generate(%d) returned invalid character %q", length, c)
			}
		}
	})
}
