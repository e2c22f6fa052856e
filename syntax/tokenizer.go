package syntax

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Token is a classified fragment of the tokenized text.
type Token struct {
	Category Category
	Text     string
	// Offset is the rune offset of Text's first character in the source.
	Offset int
}

// Tokenizer adapts a Chroma lexer for one language.
type Tokenizer struct {
	name     string
	tokenise func(text string) (chroma.Iterator, error)
}

// NewTokenizer returns a tokenizer for the Chroma lexer registered under
// language. Unknown languages use Chroma's plain-text fallback, so every
// fragment comes back as Plain.
func NewTokenizer(language string) *Tokenizer {
	l := lexers.Get(language)
	if l == nil {
		l = lexers.Fallback
	}
	l = chroma.Coalesce(l)
	return &Tokenizer{
		name: l.Config().Name,
		tokenise: func(text string) (chroma.Iterator, error) {
			// EnsureLF stays off: line endings must survive untouched.
			return l.Tokenise(&chroma.TokeniseOptions{State: "root"}, text)
		},
	}
}

// NewPythonTokenizer returns the tokenizer used for Python buffers.
func NewPythonTokenizer() *Tokenizer { return NewTokenizer("python") }

// Language is the configured lexer's name.
func (t *Tokenizer) Language() string { return t.name }

// Tokens lexes text lazily. Ranging over the result twice lexes twice.
//
// Token texts concatenate back to text exactly. Lexer output that does not
// line up with the input (for example a newline the grammar appends) is
// clipped, and anything left over is emitted as a single Other token.
func (t *Tokenizer) Tokens(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		rest := text
		offset := 0
		emit := func(cat Category, s string) bool {
			tok := Token{Category: cat, Text: s, Offset: offset}
			offset += utf8.RuneCountInString(s)
			rest = rest[len(s):]
			return yield(tok)
		}

		it, err := t.tokenise(text)
		if err == nil {
			for tok := it(); tok != chroma.EOF && rest != ""; tok = it() {
				v := tok.Value
				if v == "" {
					continue
				}
				if !strings.HasPrefix(rest, v) {
					if !strings.HasPrefix(v, rest) {
						break
					}
					v = rest
				}
				if !emit(categoryOf(tok.Type), v) {
					return
				}
			}
		}
		if rest != "" {
			emit(Other, rest)
		}
	}
}

// Collect drains seq into a slice.
func Collect(seq iter.Seq[Token]) []Token {
	var out []Token
	for tok := range seq {
		out = append(out, tok)
	}
	return out
}
