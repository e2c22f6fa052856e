package syntax

import "github.com/alecthomas/chroma/v2"

// Category is the coarse lexical class of a token.
type Category int

const (
	// Plain is unstructured text and whitespace; consumers may skip it.
	Plain Category = iota
	Keyword
	Name
	String
	Number
	Comment
	Operator
	Punctuation
	// Other is the catch-all for fragments the grammar could not classify.
	Other
)

var categoryNames = [...]string{
	Plain:       "plain",
	Keyword:     "keyword",
	Name:        "name",
	String:      "string",
	Number:      "number",
	Comment:     "comment",
	Operator:    "operator",
	Punctuation: "punctuation",
	Other:       "other",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "other"
	}
	return categoryNames[c]
}

// Tag is the display tag name for c. It matches String.
func (c Category) Tag() string { return c.String() }

// Highlighted lists every category a highlight pass may emit, in tag order.
func Highlighted() []Category {
	return []Category{Keyword, Name, String, Number, Comment, Operator, Punctuation, Other}
}

// Tags returns the tag names of Highlighted.
func Tags() []string {
	cats := Highlighted()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.Tag()
	}
	return out
}

func categoryOf(tt chroma.TokenType) Category {
	switch {
	case tt == chroma.Error:
		return Other
	// Literal.String and Literal.Number are subcategories; check them before
	// the generic Literal branch.
	case tt.InSubCategory(chroma.LiteralString):
		return String
	case tt.InSubCategory(chroma.LiteralNumber):
		return Number
	case tt.InCategory(chroma.Keyword):
		return Keyword
	case tt.InCategory(chroma.Name):
		return Name
	case tt.InCategory(chroma.Literal):
		return String
	case tt.InCategory(chroma.Comment):
		return Comment
	case tt.InCategory(chroma.Operator):
		return Operator
	case tt.InCategory(chroma.Punctuation):
		return Punctuation
	case tt.InCategory(chroma.Text):
		return Plain
	default:
		return Other
	}
}
