// Package token splits raw command-line tokens into flag names, inline values
// and list elements.
package token
