package content

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if c.Profile.Name == "" {
		t.Error("default corpus has no profile name")
	}
	if len(c.Projects) == 0 {
		t.Error("default corpus has no projects")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default corpus invalid: %v", err)
	}
}

func TestLoadFromTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.toml")
	doc := `
[profile]
name = "Ada Lovelace"
role = "Analyst"
email = "ada@example.com"

[[faqs]]
question = "Are you available?"
answer = "Yes."
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Profile.Name != "Ada Lovelace" {
		t.Errorf("name = %q", c.Profile.Name)
	}
	if len(c.FAQs) != 1 || c.FAQs[0].Answer != "Yes." {
		t.Errorf("faqs = %+v", c.FAQs)
	}
}

func TestLoadRejectsIncompleteCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.toml")
	doc := `
[profile]
name = "No Role"
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() accepted corpus missing required fields")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load() of missing file returned nil error")
	}
}
