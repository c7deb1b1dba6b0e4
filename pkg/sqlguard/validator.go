// Package sqlguard validates model-generated SQL before it is allowed
// anywhere near the company database. The generator is instructed to emit
// single read-only SELECT statements; sqlguard enforces that locally
// instead of trusting prompt adherence.
package sqlguard

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMultipleStatements indicates the SQL contains more than one
	// statement. Only single statements are ever executed.
	ErrMultipleStatements = errors.New("multiple SQL statements not allowed")

	// ErrMutatingStatement indicates the SQL contains a data- or
	// schema-mutating keyword.
	ErrMutatingStatement = errors.New("mutating SQL statements not allowed")
)

// mutatingKeywords are statement keywords that modify data or schema.
// Matched as whole words outside string literals and quoted identifiers.
var mutatingKeywords = map[string]struct{}{
	"INSERT":   {},
	"UPDATE":   {},
	"DELETE":   {},
	"CREATE":   {},
	"DROP":     {},
	"ALTER":    {},
	"TRUNCATE": {},
	"MERGE":    {},
	"GRANT":    {},
	"REVOKE":   {},
	"EXEC":     {},
	"EXECUTE":  {},
}

// ValidateAndNormalize trims the SQL, strips a single trailing semicolon,
// and rejects input containing additional statements. The returned string
// is what should be sent to the database.
func ValidateAndNormalize(sqlQuery string) (string, error) {
	normalized := stripTrailingSemicolon(strings.TrimSpace(sqlQuery))
	if normalized == "" {
		return "", nil
	}

	scan := scanOutsideLiterals(normalized)
	if scan.semicolons > 0 {
		return "", ErrMultipleStatements
	}
	return normalized, nil
}

// ValidateReadOnly rejects SQL containing a mutating statement keyword
// outside string literals and quoted identifiers. It does not parse the
// statement; a keyword anywhere in executable position is grounds for
// rejection, which errs on the side of refusing.
func ValidateReadOnly(sqlQuery string) error {
	scan := scanOutsideLiterals(sqlQuery)
	for _, word := range scan.words {
		if _, ok := mutatingKeywords[strings.ToUpper(word)]; ok {
			return fmt.Errorf("%w: found %q", ErrMutatingStatement, strings.ToUpper(word))
		}
	}
	return nil
}

type scanResult struct {
	semicolons int
	words      []string
}

// scanOutsideLiterals walks the SQL once, tracking single-quoted string
// literals and double-quoted identifiers, and collects semicolon counts
// and bare word tokens found outside both. SQL standard doubled quotes
// ('') re-enter the literal on the next character, which keeps the scan
// correct without lookahead.
func scanOutsideLiterals(sqlQuery string) scanResult {
	const (
		stateNormal = iota
		stateSingleQuote
		stateDoubleQuote
	)

	var result scanResult
	var word strings.Builder
	state := stateNormal
	prev := rune(0)

	flush := func() {
		if word.Len() > 0 {
			result.words = append(result.words, word.String())
			word.Reset()
		}
	}

	for _, ch := range sqlQuery {
		switch state {
		case stateNormal:
			switch {
			case ch == ';':
				flush()
				result.semicolons++
			case ch == '\'':
				flush()
				state = stateSingleQuote
			case ch == '"':
				flush()
				state = stateDoubleQuote
			case isWordRune(ch):
				word.WriteRune(ch)
			default:
				flush()
			}
		case stateSingleQuote:
			if ch == '\'' && prev != '\\' {
				state = stateNormal
			}
		case stateDoubleQuote:
			if ch == '"' && prev != '\\' {
				state = stateNormal
			}
		}
		prev = ch
	}
	flush()

	return result
}

func isWordRune(ch rune) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}

func stripTrailingSemicolon(sqlQuery string) string {
	sqlQuery = strings.TrimRight(sqlQuery, " \t\n\r")
	if strings.HasSuffix(sqlQuery, ";") {
		sqlQuery = strings.TrimRight(strings.TrimSuffix(sqlQuery, ";"), " \t\n\r")
	}
	return sqlQuery
}
