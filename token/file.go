package token

import (
	"fmt"
	"os"
)

// TokenizeFile tokenizes the contents of the file at path.  It produces
// the same token sequence as Tokenize on the file's bytes.
func TokenizeFile(path string) ([]Token, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return Tokenize(nil, d)
}
