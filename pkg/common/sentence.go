package common

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator"
)

var ErrInvalidSentence = errors.New("invalid sentence")

var validate = validator.New()

// Key identifies the entity within its sentence.
func (e Entity) Key() string {
	if e.ID != "" {
		return "id:" + e.ID
	}
	return fmt.Sprintf("span:%d:%d", e.Start, e.End)
}

// IsRoot reports whether the token heads itself.
func (t Token) IsRoot() bool {
	return t.Head == t.Index
}

// Validate checks field constraints and the cross references between
// tokens and entities.
func (s *Sentence) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w %d: %v", ErrInvalidSentence, s.ID, err)
	}

	positions := make(map[int]struct{}, len(s.Tokens))
	for _, tok := range s.Tokens {
		if _, ok := positions[tok.Index]; ok {
			return fmt.Errorf("%w %d: duplicate token position %d", ErrInvalidSentence, s.ID, tok.Index)
		}
		positions[tok.Index] = struct{}{}
	}

	for _, tok := range s.Tokens {
		if _, ok := positions[tok.Head]; !ok {
			return fmt.Errorf("%w %d: token %d has head %d outside the sentence", ErrInvalidSentence, s.ID, tok.Index, tok.Head)
		}
	}

	for _, ent := range s.Entities {
		_, startOK := positions[ent.Start]
		_, endOK := positions[ent.End-1]
		if !startOK || !endOK {
			return fmt.Errorf("%w %d: entity %s span [%d, %d) outside the sentence", ErrInvalidSentence, s.ID, ent.Key(), ent.Start, ent.End)
		}
	}

	return nil
}

// Children returns, for every token position, the tokens it governs in
// sentence order.
func (s *Sentence) Children() map[int][]Token {
	children := make(map[int][]Token, len(s.Tokens))
	for _, tok := range s.Tokens {
		if tok.IsRoot() {
			continue
		}
		children[tok.Head] = append(children[tok.Head], tok)
	}
	return children
}

// EntityTokens returns the tokens covered by ent in sentence order.
func (s *Sentence) EntityTokens(ent Entity) []Token {
	var out []Token
	for _, tok := range s.Tokens {
		if tok.Index >= ent.Start && tok.Index < ent.End {
			out = append(out, tok)
		}
	}
	return out
}

// AllParagraphs returns the paragraphs of the document. A document without
// paragraph segmentation yields one paragraph holding all its sentences.
func (d *Document) AllParagraphs() []Paragraph {
	if len(d.Paragraphs) > 0 {
		return d.Paragraphs
	}
	if len(d.Sentences) == 0 {
		return nil
	}
	return []Paragraph{{Text: d.Text, Sentences: d.Sentences}}
}

// Empty reports whether the document holds no sentence at all.
func (d *Document) Empty() bool {
	for _, p := range d.AllParagraphs() {
		if len(p.Sentences) > 0 {
			return false
		}
	}
	return true
}

// Validate checks every sentence of the document.
func (d *Document) Validate() error {
	for pi, p := range d.AllParagraphs() {
		for si := range p.Sentences {
			if err := p.Sentences[si].Validate(); err != nil {
				return fmt.Errorf("paragraph %d: %w", pi, err)
			}
		}
	}
	return nil
}
