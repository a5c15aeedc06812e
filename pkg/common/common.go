package common

// Document is the output of an external NLP pipeline for one input text.
// Sentences are grouped into paragraphs. A document that lists Sentences
// directly is treated as a single paragraph whose text is the document text.
type Document struct {
	ID         string      `json:"id,omitempty" jsonschema_description:"Stable identifier of the document"`
	Text       string      `json:"text,omitempty" jsonschema_description:"Raw text of the whole document"`
	Paragraphs []Paragraph `json:"paragraphs,omitempty" validate:"dive" jsonschema_description:"Paragraphs in reading order"`
	Sentences  []Sentence  `json:"sentences,omitempty" validate:"dive" jsonschema_description:"Sentences of a document without paragraph segmentation"`
}

// Paragraph is an ordered group of sentences.
type Paragraph struct {
	Text      string     `json:"text" jsonschema_description:"Raw text of the paragraph"`
	Sentences []Sentence `json:"sentences" validate:"dive" jsonschema_description:"Sentences in reading order"`
}

// Sentence is one parsed sentence: its tokens in order and the named
// entities found in it.
type Sentence struct {
	ID       int      `json:"id" jsonschema_description:"Index of the sentence in the document"`
	Text     string   `json:"text" jsonschema_description:"Raw text of the sentence"`
	Tokens   []Token  `json:"tokens" validate:"dive" jsonschema_description:"Tokens in sentence order"`
	Entities []Entity `json:"ents,omitempty" validate:"dive" jsonschema_description:"Named entities whose spans lie inside the sentence"`
}

// Token is a single word or punctuation mark of a sentence. Head is the
// index of the governing token; the sentence root points at itself.
type Token struct {
	Index int    `json:"i" validate:"min=0" jsonschema_description:"Position of the token, unique within the sentence"`
	Text  string `json:"text" jsonschema_description:"Surface form of the token"`
	Pos   string `json:"pos" jsonschema_description:"Universal part-of-speech tag"`
	Dep   string `json:"dep,omitempty" jsonschema_description:"Dependency relation to the head token"`
	Head  int    `json:"head" validate:"min=0" jsonschema_description:"Position of the head token"`
}

// Entity is a named entity covering the tokens with Start <= Index < End.
// Entities with the same ID denote the same entity. Without an ID the span
// identifies the entity.
type Entity struct {
	ID    string `json:"id,omitempty" jsonschema_description:"Optional stable entity identifier"`
	Label string `json:"label" validate:"required" jsonschema_description:"Named entity category"`
	Start int    `json:"start" validate:"min=0" jsonschema_description:"Position of the first token"`
	End   int    `json:"end" validate:"gtfield=Start" jsonschema_description:"Position after the last token"`
}
