package content

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Load returns the corpus for the given path. An empty path yields the
// compiled-in default corpus; otherwise the TOML file at path fully
// replaces it.
func Load(path string) (*Corpus, error) {
	if path == "" {
		return Default(), nil
	}

	var c Corpus
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("decode content file %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content file %s: %w", path, err)
	}
	return &c, nil
}

// Validate checks that the corpus carries the fields the assistant's
// knowledge base cannot do without.
func (c *Corpus) Validate() error {
	if c.Profile.Name == "" {
		return fmt.Errorf("profile.name is required")
	}
	if c.Profile.Role == "" {
		return fmt.Errorf("profile.role is required")
	}
	if c.Profile.Email == "" {
		return fmt.Errorf("profile.email is required")
	}
	return nil
}
