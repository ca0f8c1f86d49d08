package lexer

import (
	"fmt"

	"github.com/bufbuild/protocst/ast"
)

// TokenRecord is a flat description of one token, suitable for printing
// or for serializing as YAML.
type TokenRecord struct {
	Kind string `yaml:"kind"`
	// Pos is the start of the token as "line:col".
	Pos  string `yaml:"pos"`
	Text string `yaml:"text"`
	// Value is the decoded value of a literal.
	Value    string   `yaml:"value,omitempty"`
	Leading  []string `yaml:"leading,omitempty"`
	Trailing []string `yaml:"trailing,omitempty"`
}

// Records describes every token of res, including the end of file.
func Records(res *Result) []TokenRecord {
	all := res.All()
	records := make([]TokenRecord, 0, len(all))
	for _, tok := range all {
		records = append(records, Record(tok))
	}
	return records
}

// Record describes a single token.
func Record(tok ast.TerminalNode) TokenRecord {
	kind := KindOf(tok)
	rec := TokenRecord{
		Kind:     kind.String(),
		Pos:      fmt.Sprintf("%d:%d", tok.Start().Line, tok.Start().Col),
		Text:     tok.RawText(),
		Leading:  commentTexts(tok.LeadingComments()),
		Trailing: commentTexts(tok.TrailingComments()),
	}
	switch kind {
	case KindInt, KindFloat, KindString:
		if v, ok := tok.(ast.ValueNode); ok {
			rec.Value = fmt.Sprint(v.Value())
		}
	}
	return rec
}

func commentTexts(cmts []ast.Comment) []string {
	if len(cmts) == 0 {
		return nil
	}
	texts := make([]string, len(cmts))
	for i, c := range cmts {
		texts[i] = c.Text
	}
	return texts
}
