package syntax

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []TokenType
		wantErr bool
	}{
		{
			name:  "proposition operators",
			input: `p -> q /\ r \/ ~s <-> t`,
			want: []TokenType{
				TokenIdent, TokenArrow, TokenIdent, TokenAnd, TokenIdent,
				TokenOr, TokenTilde, TokenIdent, TokenIff, TokenIdent, TokenEOF,
			},
		},
		{
			name:  "term syntax",
			input: "fun h : p => h",
			want: []TokenType{
				TokenIdent, TokenIdent, TokenColon, TokenIdent,
				TokenFatArrow, TokenIdent, TokenEOF,
			},
		},
		{
			name:  "assign vs colon",
			input: "theorem t : p := h",
			want: []TokenType{
				TokenIdent, TokenIdent, TokenColon, TokenIdent,
				TokenAssign, TokenIdent, TokenEOF,
			},
		},
		{
			name:  "comments are skipped",
			input: "p -- the rest is ignored -> q\nq",
			want:  []TokenType{TokenIdent, TokenIdent, TokenEOF},
		},
		{
			name:  "parens",
			input: "(p)",
			want:  []TokenType{TokenLParen, TokenIdent, TokenRParen, TokenEOF},
		},
		{
			name:  "primed identifiers",
			input: "h' p_1",
			want:  []TokenType{TokenIdent, TokenIdent, TokenEOF},
		},
		{
			name:    "unexpected character",
			input:   "p & q",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewLexer(tt.input).Tokenize()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := make([]TokenType, len(tokens))
			for i, tok := range tokens {
				got[i] = tok.Type
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenPositions(t *testing.T) {
	tokens, err := NewLexer("p ->\n  q").Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// p at 1:1, -> at 1:3, q at 2:3
	wantPos := []Pos{
		{Line: 1, Column: 1},
		{Line: 1, Column: 3},
		{Line: 2, Column: 3},
	}
	for i, want := range wantPos {
		if tokens[i].Pos != want {
			t.Errorf("token %d: got %v, want %v", i, tokens[i].Pos, want)
		}
	}
}

func TestLexerErrorPosition(t *testing.T) {
	_, err := NewLexer("p\nq ?").Tokenize()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	parseErr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Pos.Line != 2 || parseErr.Pos.Column != 3 {
		t.Errorf("got position %v, want 2:3", parseErr.Pos)
	}
}
