// Package lexer provides the lexical analyzer for arithmetic expressions.
package lexer

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"
)

const eof rune = -1

// Lexer turns its input into tokens, one at a time.
// It is forward-only: once an EOF or ERROR token has been produced, it is exhausted.
type Lexer struct {
	input string

	curToken Token

	atEOF bool
	done  bool // Set once a terminal token has been handed out.

	pos     int // Current position in input.
	line    int // Current line in input.
	col     int // Current column in the line.
	prevCol int // Column before the last newline, for backup.

	start    int      // Position of the start of the current token.
	startLoc Location // Location where the current token started.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{
		input:    input,
		line:     1,
		col:      1,
		startLoc: Location{Line: 1, Column: 1},
	}
}

// NextToken scans and returns the next token.
// After the terminal token, it keeps returning EOF at the end position.
func (l *Lexer) NextToken() Token {
	if l.done {
		return Token{Type: TokEOF, Loc: l.loc()}
	}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			break
		}
	}
	if l.curToken.Type.IsTerminal() {
		l.done = true
	}
	return l.curToken
}

// Done reports whether the terminal token has been produced.
func (l *Lexer) Done() bool { return l.done }

// All returns the remaining tokens as a sequence, ending with the terminal token.
// The sequence shares the lexer state and can't be restarted.
func (l *Lexer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for !l.done {
			if !yield(l.NextToken()) {
				return
			}
		}
	}
}

func (l *Lexer) loc() Location {
	return Location{Line: l.line, Column: l.col}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return eof
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	if r == '\n' {
		l.line++
		l.prevCol = l.col
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, we can't back up.
	// If we are at the beginning of the input, we can't back up.
	if l.atEOF || l.pos == 0 {
		return
	}
	r, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
	if r == '\n' {
		l.line--
		l.col = l.prevCol
	} else {
		l.col--
	}
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) acceptFunc(fn func(rune) bool) bool {
	accepted := false
	for r := l.next(); r != eof && fn(r); r = l.next() {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		Loc:   l.startLoc,
	}
	l.ignore()
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
	l.startLoc = l.loc()
}

// errorf emits an error token located at the start of the current token.
// The rest of the input is dropped.
func (l *Lexer) errorf(format string, args ...any) stateFn {
	l.curToken = Token{
		Type:  TokError,
		Value: fmt.Sprintf(format, args...),
		Loc:   l.startLoc,
	}
	l.input = l.input[:l.pos]
	return nil
}
