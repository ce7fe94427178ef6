package match

// anyEngine matches exactly one code point, failing only at EOF. It is the
// usual content token for a delimited body that excludes nothing but the
// delimiters themselves (those are tried first by the delimited loop).
type anyEngine struct{}

// Any returns an Engine matching any single code point, failing at EOF.
func Any() Engine { return anyEngine{} }

func (anyEngine) Match(r Reader) bool {
	if r.Eof() {
		return false
	}
	r.Bump()
	return true
}
