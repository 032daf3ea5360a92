/*
File    : plasma/parser/precedence.go

Precedence levels for the Pratt parser, low to high. POW is given its
own level, one tighter than PRODUCT, so that `2 + 3 ^ 2` parses as
`2 + (3 ^ 2)` and `2 * 3 ^ 2` parses as `2 * (3 ^ 2)`: exponentiation
binds tighter than multiplication.
*/
package parser

import "github.com/plasma-lang/plasma/token"

const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	POWER       // ^
	PREFIX      // unary ! -
	CALL        // myFunction(x)
)

// precedences maps an infix operator token to its binding power. A
// token with no entry is not an infix operator at all: getPrecedence
// returns LOWEST for it, so parseExpression simply stops folding.
var precedences = map[token.Type]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.POW:      POWER,
	token.LPAREN:   CALL,
}

func getPrecedence(tok token.Token) int {
	if p, ok := precedences[tok.Type]; ok {
		return p
	}
	return LOWEST
}
