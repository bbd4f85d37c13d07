package zexpr

import (
	"strconv"
	"unicode"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokComma
	tokBad
)

type token struct {
	kind tokenKind
	text string
	pos  int
	num  complex128
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	for l.i < len(l.s) && unicode.IsSpace(rune(l.s[l.i])) {
		l.i++
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF, pos: l.i}
	}

	start := l.i
	single := func(k tokenKind) token {
		l.i++
		return token{kind: k, text: l.s[start:l.i], pos: start}
	}
	switch l.s[l.i] {
	case '+':
		return single(tokPlus)
	case '-':
		return single(tokMinus)
	case '*':
		// "**" is accepted as a power operator.
		if l.i+1 < len(l.s) && l.s[l.i+1] == '*' {
			l.i += 2
			return token{kind: tokCaret, text: "**", pos: start}
		}
		return single(tokStar)
	case '/':
		return single(tokSlash)
	case '^':
		return single(tokCaret)
	case '(', '[':
		return single(tokLParen)
	case ')', ']':
		return single(tokRParen)
	case ',':
		return single(tokComma)
	}

	ch := rune(l.s[l.i])
	if isIdentStart(ch) {
		l.i++
		for l.i < len(l.s) && isIdentContinue(rune(l.s[l.i])) {
			l.i++
		}
		return token{kind: tokIdent, text: l.s[start:l.i], pos: start}
	}
	if ch == '.' || unicode.IsDigit(ch) {
		l.i = scanNumber(l.s, l.i)
		f, err := strconv.ParseFloat(l.s[start:l.i], 64)
		if err != nil {
			return token{kind: tokBad, text: l.s[start:l.i], pos: start}
		}
		// Imaginary literal: a trailing i not starting a longer identifier.
		if l.i < len(l.s) && l.s[l.i] == 'i' &&
			(l.i+1 == len(l.s) || !isIdentContinue(rune(l.s[l.i+1]))) {
			l.i++
			return token{kind: tokNumber, text: l.s[start:l.i], pos: start, num: complex(0, f)}
		}
		return token{kind: tokNumber, text: l.s[start:l.i], pos: start, num: complex(f, 0)}
	}

	l.i++
	return token{kind: tokBad, text: string(ch), pos: start}
}

func scanNumber(s string, i int) int {
	for i < len(s) && unicode.IsDigit(rune(s[i])) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && unicode.IsDigit(rune(s[i])) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && unicode.IsDigit(rune(s[k])) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
