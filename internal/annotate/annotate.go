// Package annotate defines the text annotation contract consumed by the
// extraction pipeline. The pipeline depends only on the Annotator interface;
// the bundled heuristic implementation keeps the binary self-contained, and
// tests substitute their own.
package annotate

// Entity labels produced by annotators.
const (
	LabelPerson       = "PERSON"
	LabelOrganization = "ORG"
)

// POS tags produced by annotators. Only PROPN is consumed by the pipeline.
const (
	POSProperNoun = "PROPN"
	POSNumber     = "NUM"
	POSOther      = "X"
)

// Entity is a named entity found in a text. Start is the index of the
// entity's first token within the annotated text's token sequence.
type Entity struct {
	Label string
	Text  string
	Start int
}

// Token is a single token with its part-of-speech tag.
type Token struct {
	Text string
	POS  string
}

// Annotator supplies named entities, token/POS sequences, and sentence spans
// for a text. The pipeline calls it both on whole documents and on individual
// mined sentences.
type Annotator interface {
	Entities(text string) []Entity
	Tokens(text string) []Token
	Sentences(text string) []string
}

// Doc bundles the whole-document annotations handed to the extraction
// functions.
type Doc struct {
	Entities []Entity
	Tokens   []Token
}

// Annotate runs the annotator over text and returns the whole-document
// annotations.
func Annotate(a Annotator, text string) *Doc {
	return &Doc{
		Entities: a.Entities(text),
		Tokens:   a.Tokens(text),
	}
}
