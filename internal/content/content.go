// Package content holds the portfolio corpus: the structured profile,
// project, skill, experience, education, certification, and FAQ records
// that feed the chat assistant's knowledge base.
//
// The corpus is treated as opaque data by the rest of the server. A default
// corpus is compiled in; deployments can replace it with a TOML file.
package content

// Corpus is the complete portfolio content set.
type Corpus struct {
	Profile         Profile         `toml:"profile"`
	About           About           `toml:"about"`
	WhatIDo         []Service       `toml:"what_i_do"`
	Stats           []Stat          `toml:"stats"`
	SkillCategories []SkillCategory `toml:"skill_categories"`
	Projects        []Project       `toml:"projects"`
	Experiences     []Experience    `toml:"experiences"`
	Education       []Education     `toml:"education"`
	Certifications  []Certification `toml:"certifications"`
	FAQs            []FAQ           `toml:"faqs"`
}

// Profile holds identity and contact fields.
type Profile struct {
	Name      string `toml:"name"`
	Role      string `toml:"role"`
	Tagline   string `toml:"tagline"`
	Email     string `toml:"email"`
	Location  string `toml:"location"`
	Available bool   `toml:"available"`
	GitHub    string `toml:"github"`
	LinkedIn  string `toml:"linkedin"`
}

// About is the narrative bio.
type About struct {
	Intro      string   `toml:"intro"`
	Paragraphs []string `toml:"paragraphs"`
	Highlights []string `toml:"highlights"`
}

// Service is one "what I do" entry.
type Service struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// Stat is a single headline counter.
type Stat struct {
	Label string `toml:"label"`
	Value string `toml:"value"`
}

// SkillCategory groups skills with proficiency levels.
type SkillCategory struct {
	Title  string  `toml:"title"`
	Skills []Skill `toml:"skills"`
}

// Skill is a named skill with a proficiency level
// (expert, advanced, or intermediate).
type Skill struct {
	Name  string `toml:"name"`
	Level string `toml:"level"`
}

// Project is a full project record.
type Project struct {
	Title        string   `toml:"title"`
	Year         string   `toml:"year"`
	Featured     bool     `toml:"featured"`
	Tagline      string   `toml:"tagline"`
	Description  string   `toml:"description"`
	Problem      string   `toml:"problem"`
	Solution     string   `toml:"solution"`
	Architecture string   `toml:"architecture"`
	Stack        []string `toml:"stack"`
	Results      []string `toml:"results"`
	Tradeoffs    []string `toml:"tradeoffs"`
	NextSteps    []string `toml:"next_steps"`
	Links        []Link   `toml:"links"`
	Tags         []string `toml:"tags"`
}

// Link is a labeled URL.
type Link struct {
	Label string `toml:"label"`
	URL   string `toml:"url"`
}

// Experience is one employment record.
type Experience struct {
	Title            string   `toml:"title"`
	Company          string   `toml:"company"`
	Location         string   `toml:"location"`
	Type             string   `toml:"type"`
	StartDate        string   `toml:"start_date"`
	EndDate          string   `toml:"end_date"`
	Description      string   `toml:"description"`
	Responsibilities []string `toml:"responsibilities"`
	Achievements     []string `toml:"achievements"`
	Technologies     []string `toml:"technologies"`
}

// Education is one education record.
type Education struct {
	Degree      string   `toml:"degree"`
	Field       string   `toml:"field"`
	Institution string   `toml:"institution"`
	Location    string   `toml:"location"`
	StartYear   string   `toml:"start_year"`
	EndYear     string   `toml:"end_year"`
	GPA         string   `toml:"gpa"`
	Highlights  []string `toml:"highlights"`
	Coursework  []string `toml:"coursework"`
}

// Certification is one certification record.
type Certification struct {
	Name   string   `toml:"name"`
	Issuer string   `toml:"issuer"`
	Date   string   `toml:"date"`
	Skills []string `toml:"skills"`
}

// FAQ is a fixed question/answer pair.
type FAQ struct {
	Question string `toml:"question"`
	Answer   string `toml:"answer"`
}
