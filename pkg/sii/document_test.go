package sii_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/etsvibes/pkg/sii"
)

func TestDocumentSetMoneyScenario(t *testing.T) {
	doc := sii.NewDocument("money_account: 500\nexperience_points: 10\n")

	require.True(t, doc.Set("money_account", "50000000"))
	assert.Equal(t, "money_account: 50000000\nexperience_points: 10\n", doc.Content())
}

func TestDocumentGet(t *testing.T) {
	text := `SiiNunit
{
bank : _nameless.1a2b {
 money_account: 500   
 money_account_limit: 9
	coinsurance_fixed :   42
 loan_limit:
}
}
`
	doc := sii.NewDocument(text)

	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{key: "money_account", want: "500", wantOK: true},
		{key: "money_account_limit", want: "9", wantOK: true},
		{key: "coinsurance_fixed", want: "42", wantOK: true},
		{key: "money", wantOK: false},
		{key: "account", wantOK: false},
		{key: "loan_limit", wantOK: false},
		{key: "missing", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := doc.Get(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocumentKeyIsLiteral(t *testing.T) {
	doc := sii.NewDocument("a.b: 1\naxb: 2\nc[0]: 3\n")

	got, ok := doc.Get("a.b")
	require.True(t, ok)
	assert.Equal(t, "1", got)

	require.True(t, doc.Set("c[0]", "7"))
	assert.Equal(t, "a.b: 1\naxb: 2\nc[0]: 7\n", doc.Content())

	_, ok = doc.Get(".*")
	assert.False(t, ok)
}

func TestDocumentDuplicateKeysFirstMatchOnly(t *testing.T) {
	text := " experience_points: 10\n experience_points: 20\n"
	doc := sii.NewDocument(text)

	got, ok := doc.Get("experience_points")
	require.True(t, ok)
	assert.Equal(t, "10", got)

	require.True(t, doc.Set("experience_points", "99"))
	assert.Equal(t, " experience_points: 99\n experience_points: 20\n", doc.Content())
}

func TestDocumentSetMissingKeyLeavesContent(t *testing.T) {
	text := "money_account: 500\r\nexperience_points: 10\r\n"
	doc := sii.NewDocument(text)

	assert.False(t, doc.Set("truck_count", "3"))
	assert.Equal(t, text, doc.Content())
}

func TestDocumentSetPreservesPrefixAndTrailing(t *testing.T) {
	doc := sii.NewDocument("\t money_account :  500 \r\nnext: 1\r\n")

	require.True(t, doc.Set("money_account", "1"))
	assert.Equal(t, "\t money_account :  1 \r\nnext: 1\r\n", doc.Content())
}

func TestDocumentSetIdempotent(t *testing.T) {
	once := sii.NewDocument("money_account: 500\nexperience_points: 10\n")
	twice := sii.NewDocument("money_account: 500\nexperience_points: 10\n")

	once.Set("experience_points", "123")
	twice.Set("experience_points", "123")
	twice.Set("experience_points", "123")

	assert.Equal(t, once.Content(), twice.Content())
}

func TestDocumentSetKeepsLineCount(t *testing.T) {
	text := "a: 1\nmoney_account: 500\nb: 2\n"
	doc := sii.NewDocument(text)

	require.True(t, doc.Set("money_account", "a much longer value than before"))
	assert.Equal(t, 3, countLines(doc.Content()))
}

func TestDocumentSetRejectsMultilineValue(t *testing.T) {
	text := "money_account: 500\nexperience_points: 10\n"

	for _, value := range []string{"1\nexperience_points: 0", "1\r", "\r\n"} {
		doc := sii.NewDocument(text)
		assert.False(t, doc.Set("money_account", value), "value %q", value)
		assert.Equal(t, text, doc.Content())

		xp, ok := doc.Get("experience_points")
		require.True(t, ok)
		assert.Equal(t, "10", xp)
	}
}

func TestDocumentSetKeepsUnicodeSpacing(t *testing.T) {
	doc := sii.NewDocument("money_account:\u00a0500\u2009\nnext: 1\n")

	got, ok := doc.Get("money_account")
	require.True(t, ok)
	assert.Equal(t, "500", got)

	require.True(t, doc.Set("money_account", "7"))
	assert.Equal(t, "money_account:\u00a07\u2009\nnext: 1\n", doc.Content())
}

func TestDocumentIntHelpers(t *testing.T) {
	doc := sii.NewDocument("money_account: 500\nname: bob\n")

	n, ok := doc.Int("money_account")
	require.True(t, ok)
	assert.Equal(t, int64(500), n)

	_, ok = doc.Int("name")
	assert.False(t, ok)
	_, ok = doc.Int("missing")
	assert.False(t, ok)

	require.True(t, doc.SetInt("money_account", -20))
	n, _ = doc.Int("money_account")
	assert.Equal(t, int64(-20), n)
}

func countLines(s string) int {
	n := 0
	for _, c := range s {
		if c == '\n' {
			n++
		}
	}
	return n
}
