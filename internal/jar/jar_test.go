package jar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []Cookie
	}{
		{"empty", "", []Cookie{}},
		{"single", "theme=dark", []Cookie{{"theme", "dark"}}},
		{
			"multiple with spaces",
			"theme=dark;  lang = en ; ",
			[]Cookie{{"theme", "dark"}, {"lang", "en"}},
		},
		{
			"value with equals",
			"token=a=b==",
			[]Cookie{{"token", "a=b=="}},
		},
		{
			"bare value",
			"orphan; a=1",
			[]Cookie{{"", "orphan"}, {"a", "1"}},
		},
		{
			"duplicate overwrites",
			"a=1; b=2; a=3",
			[]Cookie{{"a", "3"}, {"b", "2"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.input).Cookies()
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestApply(t *testing.T) {
	j := Parse("a=1; b=2")

	j.Apply("c=3")
	assert.Equal(t, "a=1; b=2; c=3", j.String())

	// overwrite keeps position
	j.Apply("a=9")
	assert.Equal(t, "a=9; b=2; c=3", j.String())

	// attributes are ignored
	j.Apply("b=7; path=/; max-age=10")
	assert.Equal(t, "a=9; b=7; c=3", j.String())

	// empty value expires
	j.Apply("a=")
	assert.Equal(t, "b=7; c=3", j.String())

	_, ok := j.Get("a")
	assert.False(t, ok)

	// removing an unknown cookie is a no-op
	j.Apply("missing=")
	assert.Equal(t, 2, j.Len())
}

func TestApplyBareValue(t *testing.T) {
	j := Parse("")
	j.Apply("orphan")

	v, ok := j.Get("")
	require.True(t, ok)
	assert.Equal(t, "orphan", v)
	assert.Equal(t, "orphan", j.String())
}

func TestStringRoundTrip(t *testing.T) {
	const in = "theme=dark; lang=en; token=a=b"
	assert.Equal(t, in, Parse(in).String())
}

func TestApplyTrimsAndExpiresBlankValues(t *testing.T) {
	j := Parse("")

	j.Apply("n= padded ")
	v, ok := j.Get("n")
	require.True(t, ok)
	assert.Equal(t, "padded", v)

	// a value of only spaces trims to empty, which expires the cookie
	j.Apply("n=   ")
	_, ok = j.Get("n")
	assert.False(t, ok)

	j.Apply("n=")
	_, ok = j.Get("n")
	assert.False(t, ok)
	assert.Equal(t, "", j.String())
}
