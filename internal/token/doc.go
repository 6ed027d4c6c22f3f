// Package token defines the lexical vocabulary of the JavaScript subset
// understood by jsmin: token kinds, keywords and trivia.
package token
