package knowledge

import (
	"strings"
	"testing"
	"time"

	"github.com/manthanmittal/portfolio-server/internal/content"
)

func TestKnowledgeBaseContainsAllSections(t *testing.T) {
	c := New(content.Default())
	kb := c.KnowledgeBase()

	headers := []string{
		"## PERSONAL INFORMATION",
		"## ABOUT",
		"## WHAT I DO",
		"## PROFESSIONAL STATS",
		"## TECHNICAL SKILLS",
		"## PROJECT PORTFOLIO",
		"## PROFESSIONAL EXPERIENCE",
		"## EDUCATION",
		"## CERTIFICATIONS",
		"## FREQUENTLY ASKED QUESTIONS",
	}
	for _, h := range headers {
		if !strings.Contains(kb, h) {
			t.Errorf("knowledge base missing section %q", h)
		}
	}

	// Sections appear in the fixed order.
	last := -1
	for _, h := range headers {
		idx := strings.Index(kb, h)
		if idx <= last {
			t.Errorf("section %q out of order", h)
		}
		last = idx
	}
}

func TestKnowledgeBaseSectionDelimiter(t *testing.T) {
	kb := New(content.Default()).KnowledgeBase()
	if got := strings.Count(kb, "\n\n---\n\n"); got != 9 {
		t.Errorf("delimiter count = %d, want 9", got)
	}
}

func TestKnowledgeBaseIncludesProfileFacts(t *testing.T) {
	corpus := content.Default()
	kb := New(corpus).KnowledgeBase()

	for _, want := range []string{
		"- Name: " + corpus.Profile.Name,
		"- Email: " + corpus.Profile.Email,
	} {
		if !strings.Contains(kb, want) {
			t.Errorf("knowledge base missing %q", want)
		}
	}
	for _, p := range corpus.Projects {
		if !strings.Contains(kb, p.Title) {
			t.Errorf("knowledge base missing project %q", p.Title)
		}
	}
}

func TestKnowledgeBaseIsStable(t *testing.T) {
	c := New(content.Default())
	if c.KnowledgeBase() != c.KnowledgeBase() {
		t.Error("KnowledgeBase() differs between calls")
	}
}

func TestSystemPromptWrapsKnowledgeBase(t *testing.T) {
	corpus := content.Default()
	c := New(corpus)
	prompt := c.SystemPrompt()

	for _, want := range []string{
		"## YOUR ROLE & PERSONALITY",
		"## AVAILABLE ACTIONS YOU CAN SUGGEST",
		"## KNOWLEDGE BASE",
		"## RESPONSE GUIDELINES",
		c.KnowledgeBase(),
		corpus.Profile.Name,
	} {
		if !strings.Contains(prompt, want) {
			snippet := want
			if len(snippet) > 40 {
				snippet = snippet[:40] + "..."
			}
			t.Errorf("system prompt missing %q", snippet)
		}
	}
}

func TestSystemPromptIncludesCurrentDate(t *testing.T) {
	c := New(content.Default())
	c.now = func() time.Time { return time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC) }

	prompt := c.SystemPrompt()
	if !strings.HasSuffix(prompt, "Current date: March 14, 2026") {
		t.Errorf("system prompt does not end with formatted date, got tail %q",
			prompt[len(prompt)-40:])
	}
}
