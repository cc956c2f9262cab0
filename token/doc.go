// Package token provides JSON lexing support for PSON.
//
// [Lexer] scans a JSON document one token at a time. String tokens are
// unescaped as they are scanned, including UTF-16 surrogate pairs, and number
// tokens are validated against the JSON number grammar.
//
// The package also holds the lexical helpers shared by everything that
// writes JSON: [AppendQuote] and [AppendFloat]. Keeping them in one place
// makes the tree encoder and the transcoder produce identical text.
package token
