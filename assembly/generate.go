package assembly

import (
	"fmt"
	"math/rand"
)

// alphabet is the nucleotide set used for synthetic sequences.
const alphabet = "ACGT"

// GenerateFragments builds a reproducible synthetic instance: a random
// sequence of sequenceLength nucleotides, cut into numFragments fragments
// of fragmentLength at distinct random positions, shuffled to erase the
// origin order. Returns the fragments and the reference sequence they
// came from.
//
// The same seed always yields the same instance. numFragments may be 0.
//
// Errors: ErrNegativeFragmentCount, ErrInvalidLength, ErrTooManyFragments
// (more fragments requested than distinct cut positions exist).
func GenerateFragments(numFragments, fragmentLength, sequenceLength int, seed int64) ([]string, string, error) {
	if numFragments < 0 {
		return nil, "", fmt.Errorf("assembly: GenerateFragments(n=%d): %w", numFragments, ErrNegativeFragmentCount)
	}
	if fragmentLength < 1 || fragmentLength > sequenceLength {
		return nil, "", fmt.Errorf("assembly: GenerateFragments(fragLen=%d, seqLen=%d): %w",
			fragmentLength, sequenceLength, ErrInvalidLength)
	}
	positions := sequenceLength - fragmentLength + 1
	if numFragments > positions {
		return nil, "", fmt.Errorf("assembly: GenerateFragments(n=%d, positions=%d): %w",
			numFragments, positions, ErrTooManyFragments)
	}

	rnd := rand.New(rand.NewSource(seed))

	seq := make([]byte, sequenceLength)
	for i := range seq {
		seq[i] = alphabet[rnd.Intn(len(alphabet))]
	}
	original := string(seq)

	fragments := make([]string, 0, numFragments)
	taken := make(map[int]struct{}, numFragments)
	for len(fragments) < numFragments {
		pos := rnd.Intn(positions)
		if _, dup := taken[pos]; dup {
			continue
		}
		taken[pos] = struct{}{}
		fragments = append(fragments, original[pos:pos+fragmentLength])
	}

	rnd.Shuffle(len(fragments), func(i, j int) {
		fragments[i], fragments[j] = fragments[j], fragments[i]
	})
	return fragments, original, nil
}
