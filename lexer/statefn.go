package lexer

import (
	"slices"
	"unicode"
)

type stateFn func(*Lexer) stateFn

const digits = "0123456789"

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+': TokPlus,
	'-': TokMinus,
	'*': TokStar,
	'%': TokPercent,
	'(': TokParenLeft,
	')': TokParenRight,
}

func lexText(l *Lexer) stateFn {
	l.acceptFunc(unicode.IsSpace)
	l.ignore()

	switch r := l.peek(); {
	case r == eof:
		return l.emit(TokEOF)
	case r >= '0' && r <= '9':
		return lexNumber
	case r == '_' || unicode.IsLetter(r):
		return lexIdentifier
	case r == '"', r == '\'':
		return lexString(r)
	case r == '/':
		l.next()
		if l.peek() == '/' {
			return lexComment
		}
		return l.emit(TokSlash)
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.errorf("unexpected character: %q", r)
	}
}

func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digits)
	return l.emit(TokNumber)
}

func isIdentifierRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func lexIdentifier(l *Lexer) stateFn {
	l.acceptFunc(isIdentifierRune)
	if slices.Contains(keywords, l.input[l.start:l.pos]) {
		return l.emit(TokKeyword)
	}
	return l.emit(TokIdentifier)
}

// lexComment consumes a `//` comment up to, not including, the end of line.
// The first slash has already been consumed.
func lexComment(l *Lexer) stateFn {
	l.acceptFunc(func(r rune) bool { return r != '\n' })
	return l.emit(TokComment)
}

// lexString scans a quoted string. The token value excludes both quotes,
// its location is the one of the opening quote.
func lexString(quote rune) stateFn {
	return func(l *Lexer) stateFn {
		l.next() // Opening quote.
		for {
			r := l.next()
			if r == eof {
				return l.errorf("unterminated string")
			}
			if r == quote {
				break
			}
		}
		tok := l.thisToken(TokString)
		tok.Value = tok.Value[1 : len(tok.Value)-1]
		return l.emitToken(tok)
	}
}
