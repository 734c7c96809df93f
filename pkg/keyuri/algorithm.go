package keyuri

// Algorithm identifies the HMAC hash function of a credential.
// The set is closed, so a Key never carries an unknown algorithm.
type Algorithm uint8

const (
	AlgorithmSHA1 Algorithm = iota
	AlgorithmSHA256
	AlgorithmSHA512
)

// String returns the canonical URI spelling of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmSHA256:
		return "SHA256"
	case AlgorithmSHA512:
		return "SHA512"
	default:
		return "SHA1"
	}
}

// valid reports whether a is one of the defined constants. Converting an
// arbitrary integer to Algorithm can produce values outside the set.
func (a Algorithm) valid() bool {
	switch a {
	case AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512:
		return true
	}
	return false
}

// parseAlgorithm matches raw against the closed set. The match is exact:
// unlike scheme and type, algorithm names are compared case-sensitively.
func parseAlgorithm(raw string) (Algorithm, error) {
	switch raw {
	case "SHA1":
		return AlgorithmSHA1, nil
	case "SHA256":
		return AlgorithmSHA256, nil
	case "SHA512":
		return AlgorithmSHA512, nil
	}
	return DefaultAlgorithm, ErrInvalidAlgorithm
}
