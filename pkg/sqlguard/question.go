package sqlguard

import (
	"errors"

	libinjection "github.com/corazawaf/libinjection-go"
)

// ErrSuspiciousQuestion indicates the natural-language question carries a
// SQL injection payload.
var ErrSuspiciousQuestion = errors.New("question contains a SQL injection pattern")

// CheckQuestion screens a natural-language question for SQL injection
// payloads before it is interpolated into any prompt. Questions are plain
// business language; anything libinjection fingerprints as SQLi is
// someone trying to smuggle SQL through the model.
func CheckQuestion(question string) error {
	if isSQLi, _ := libinjection.IsSQLi(question); isSQLi {
		return ErrSuspiciousQuestion
	}
	return nil
}
