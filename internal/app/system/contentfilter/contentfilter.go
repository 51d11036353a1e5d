// Package contentfilter builds the Mongo filter fragments used to narrow
// a listing: exact category equality and case-sensitive substring match.
package contentfilter

import (
	"net/url"
	"regexp"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson"
)

// All is the category token that disables category filtering.
const All = "all"

// IsAll reports whether token selects every record.
func IsAll(token string) bool {
	return token == All
}

// CategoryParam reads the category token from a query string. An absent
// key selects every record; a present value is used verbatim, so an empty
// or space-padded value only matches a category stored that way.
func CategoryParam(values url.Values) string {
	if _, ok := values["category"]; !ok {
		return All
	}
	return values.Get("category")
}

// Category matches records whose category equals token exactly. It
// returns an empty filter for "all".
func Category(token string) bson.M {
	if IsAll(token) {
		return bson.M{}
	}
	return bson.M{"category": token}
}

// MatchNone is a filter no stored record satisfies.
func MatchNone() bson.M {
	return bson.M{"_id": bson.M{"$exists": false}}
}

// Usable reports whether q can be sent to the server as a pattern. Mongo
// rejects regexes that are not valid UTF-8; such a query matches nothing.
func Usable(q string) bool {
	return utf8.ValidString(q)
}

// Clip shortens q to at most max bytes without splitting a rune. Spaces
// are kept.
func Clip(q string, max int) string {
	if max < 0 || len(q) <= max {
		return q
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(q[cut]) {
		cut--
	}
	return q[:cut]
}

// Keyword matches records where q occurs as a literal, case-sensitive
// substring of any of fields. It returns an empty filter for an empty q
// and MatchNone for a q that is not Usable.
func Keyword(q string, fields ...string) bson.M {
	if q == "" || len(fields) == 0 {
		return bson.M{}
	}
	if !Usable(q) {
		return MatchNone()
	}
	pattern := regexp.QuoteMeta(q)
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: bson.M{"$regex": pattern}})
	}
	return bson.M{"$or": or}
}

// And combines fragments, skipping empty ones.
func And(filters ...bson.M) bson.M {
	parts := make(bson.A, 0, len(filters))
	for _, f := range filters {
		if len(f) > 0 {
			parts = append(parts, f)
		}
	}
	switch len(parts) {
	case 0:
		return bson.M{}
	case 1:
		return parts[0].(bson.M)
	}
	return bson.M{"$and": parts}
}
