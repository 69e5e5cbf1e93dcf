package rules

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

//go:embed */README.md
var rulesFS embed.FS

// RuleInfo holds metadata extracted from a rule README's front matter.
type RuleInfo struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Content     string `yaml:"-"`
}

var markdown = goldmark.New(goldmark.WithExtensions(&frontmatter.Extender{}))

// ListRules returns all embedded rules sorted by ID.
func ListRules() ([]RuleInfo, error) {
	return listRulesFromFS(rulesFS)
}

// LookupRule finds a rule by ID (e.g. "S001") or name (e.g. "too-long-line")
// and returns its full README content.
func LookupRule(query string) (string, error) {
	return lookupRuleFromFS(rulesFS, query)
}

func listRulesFromFS(fsys fs.FS) ([]RuleInfo, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading rules directory: %w", err)
	}

	var rules []RuleInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := fs.ReadFile(fsys, entry.Name()+"/README.md")
		if err != nil {
			continue
		}
		info, err := parseFrontMatter(data)
		if err != nil {
			continue
		}
		info.Content = string(data)
		rules = append(rules, info)
	}

	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID < rules[j].ID
	})

	return rules, nil
}

func lookupRuleFromFS(fsys fs.FS, query string) (string, error) {
	rules, err := listRulesFromFS(fsys)
	if err != nil {
		return "", err
	}

	for _, r := range rules {
		if strings.EqualFold(r.ID, query) || r.Name == query {
			return r.Content, nil
		}
	}

	return "", fmt.Errorf("unknown rule %q", query)
}

// parseFrontMatter decodes id, name and description from the YAML front
// matter of a README.
func parseFrontMatter(src []byte) (RuleInfo, error) {
	ctx := parser.NewContext()
	markdown.Parser().Parse(text.NewReader(src), parser.WithContext(ctx))

	data := frontmatter.Get(ctx)
	if data == nil {
		return RuleInfo{}, fmt.Errorf("missing front matter")
	}

	var info RuleInfo
	if err := data.Decode(&info); err != nil {
		return RuleInfo{}, fmt.Errorf("decoding front matter: %w", err)
	}
	if info.ID == "" {
		return RuleInfo{}, fmt.Errorf("front matter missing id")
	}
	return info, nil
}
