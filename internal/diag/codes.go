package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка — на первое время.
	UnknownCode Code = 0

	// Лексические.
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexBadContinuation    Code = 1004
	LexInconsistentDedent Code = 1005

	// Срезание аннотаций.
	StripInfo               Code = 3000
	StripBreakInErasedSpan  Code = 3001
	StripMissingReturnColon Code = 3002
	StripBadHeaderShape     Code = 3003

	// Проверка результата. Отдельное пространство кодов, чтобы caller мог
	// отличить "ваш вход сломан" от "мы сломали выход".
	ValidateInfo       Code = 4000
	ValidateRelex      Code = 4001
	ValidateUnbalanced Code = 4002
)

var codeIDs = map[Code]string{
	UnknownCode:             "unknown",
	LexInfo:                 "lex-info",
	LexUnknownChar:          "lex-unknown-char",
	LexUnterminatedString:   "lex-unterminated-string",
	LexBadNumber:            "lex-bad-number",
	LexBadContinuation:      "lex-bad-continuation",
	LexInconsistentDedent:   "lex-inconsistent-dedent",
	StripInfo:               "strip-info",
	StripBreakInErasedSpan:  "strip-break-in-erased-span",
	StripMissingReturnColon: "strip-missing-return-colon",
	StripBadHeaderShape:     "strip-bad-header-shape",
	ValidateInfo:            "validate-info",
	ValidateRelex:           "validate-relex",
	ValidateUnbalanced:      "validate-unbalanced",
}

// ID returns the stable human-readable identifier of the code.
func (c Code) ID() string {
	if id, ok := codeIDs[c]; ok {
		return id
	}
	return fmt.Sprintf("code-%d", uint16(c))
}

func (c Code) String() string {
	return fmt.Sprintf("S%04d", uint16(c))
}
