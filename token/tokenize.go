package token

import (
	"fmt"
)

// Tokenize appends the tokens of src to dst and returns the result.  The
// first lexical failure stops token production and is returned with its
// position.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := &PosDoc{d: src}
	d := posDoc.d
	n := len(d)
	i := 0
	for i < n {
		c := d[i]
		switch c {
		case ' ', '\t', '\r':
			i++
		case '\n':
			posDoc.nl(i)
			i++
		case '{':
			dst = append(dst, Token{Type: TLCurl, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case '}':
			dst = append(dst, Token{Type: TRCurl, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case '[':
			dst = append(dst, Token{Type: TLSquare, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case ']':
			dst = append(dst, Token{Type: TRSquare, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case ':':
			dst = append(dst, Token{Type: TColon, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case ',':
			dst = append(dst, Token{Type: TComma, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case '"':
			j, err := bsEscQuoted(d[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: TString, Pos: posDoc.Pos(i), Bytes: d[i : i+j]})
			i += j
		case 't':
			if !keywordAt(d[i:], "true") {
				return nil, UnexpectedErr(lexemeAt(d[i:]), posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: TTrue, Pos: posDoc.Pos(i), Bytes: d[i : i+4]})
			i += 4
		case 'f':
			if !keywordAt(d[i:], "false") {
				return nil, UnexpectedErr(lexemeAt(d[i:]), posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: TFalse, Pos: posDoc.Pos(i), Bytes: d[i : i+5]})
			i += 5
		case 'n':
			if !keywordAt(d[i:], "null") {
				return nil, UnexpectedErr(lexemeAt(d[i:]), posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: TNull, Pos: posDoc.Pos(i), Bytes: d[i : i+4]})
			i += 4
		default:
			if c != '-' && !asciiDigit(c) {
				return nil, UnexpectedErr(fmt.Sprintf("%q", c), posDoc.Pos(i))
			}
			j, isFloat, err := number(d[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			tt := TInteger
			if isFloat {
				tt = TFloat
			}
			dst = append(dst, Token{Type: tt, Pos: posDoc.Pos(i), Bytes: d[i : i+j]})
			i += j
		}
	}
	return dst, nil
}

func lexemeAt(d []byte) string {
	i := 0
	for i < len(d) && i < 10 && !delimByte(d[i]) {
		i++
	}
	return fmt.Sprintf("%q", string(d[:i]))
}
