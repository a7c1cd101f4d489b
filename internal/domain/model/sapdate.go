package model

import (
	"strconv"
	"strings"
	"time"
)

// SAP OData v2 wraps timestamps in a fixed textual marker around a decimal
// millisecond epoch, e.g. "/Date(1704067200000)/". The grammar accepted by
// DecodeSAPDate is exactly:
//
//	"/Date(" <decimal integer, optionally negative> ")/"
const (
	sapDatePrefix = "/Date("
	sapDateSuffix = ")/"
)

// DecodeSAPDate extracts the embedded millisecond epoch from a wrapped SAP
// date string. It returns ok=false when the input does not match the grammar,
// leaving pass-through handling to the caller.
func DecodeSAPDate(s string) (time.Time, bool) {
	if !strings.HasPrefix(s, sapDatePrefix) || !strings.HasSuffix(s, sapDateSuffix) {
		return time.Time{}, false
	}

	inner := s[len(sapDatePrefix) : len(s)-len(sapDateSuffix)]
	ms, err := strconv.ParseInt(inner, 10, 64)
	if err != nil {
		return time.Time{}, false
	}

	return time.UnixMilli(ms).UTC(), true
}

// FormatSAPDate renders a wrapped SAP date as a calendar date. Inputs that do
// not match the wrapped grammar are returned unchanged, so already-plain
// dates pass through.
func FormatSAPDate(s string) string {
	t, ok := DecodeSAPDate(s)
	if !ok {
		return s
	}
	return t.Format("2006-01-02")
}
