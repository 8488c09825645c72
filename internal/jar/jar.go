// Package jar parses and merges the aggregate cookie string held by an
// ambient store, applying assignments the way a browser cookie jar does.
package jar

import "strings"

const (
	pairSeparator  = ";"
	joinSeparator  = "; "
	valueSeparator = "="
)

// Cookie is a single name/value pair in the jar.
type Cookie struct {
	Name  string
	Value string
}

func (c Cookie) String() string {
	if c.Name == "" {
		return c.Value
	}

	return c.Name + valueSeparator + c.Value
}

// Jar is an ordered set of cookies, unique by name.
type Jar struct {
	cookies []Cookie
}

// Parse decodes an aggregate string of the form "a=1; b=2".
// Later duplicates overwrite earlier ones.
func Parse(s string) *Jar {
	j := &Jar{}

	for _, part := range strings.Split(s, pairSeparator) {
		if strings.TrimSpace(part) == "" {
			continue
		}

		c := parseCookie(part)
		j.set(c)
	}

	return j
}

// Apply merges a single assignment fragment ("name=value; attrs...") into
// the jar. Attributes after the first separator are ignored. An empty value
// expires the cookie.
func (j *Jar) Apply(fragment string) {
	head, _, _ := strings.Cut(fragment, pairSeparator)

	c := parseCookie(head)
	if c.Value == "" {
		j.Delete(c.Name)
		return
	}

	j.set(c)
}

// Get returns the value stored under name.
func (j *Jar) Get(name string) (string, bool) {
	if i := j.index(name); i >= 0 {
		return j.cookies[i].Value, true
	}

	return "", false
}

// Delete drops the cookie with the given name, if present.
func (j *Jar) Delete(name string) {
	i := j.index(name)
	if i < 0 {
		return
	}

	j.cookies = append(j.cookies[:i], j.cookies[i+1:]...)
}

// Len returns the number of cookies held.
func (j *Jar) Len() int {
	return len(j.cookies)
}

// Cookies returns a copy of the cookies in insertion order.
func (j *Jar) Cookies() []Cookie {
	out := make([]Cookie, len(j.cookies))
	copy(out, j.cookies)

	return out
}

// String serializes the jar back into its aggregate form.
func (j *Jar) String() string {
	parts := make([]string, 0, len(j.cookies))
	for _, c := range j.cookies {
		parts = append(parts, c.String())
	}

	return strings.Join(parts, joinSeparator)
}

func (j *Jar) set(c Cookie) {
	if i := j.index(c.Name); i >= 0 {
		j.cookies[i].Value = c.Value
		return
	}

	j.cookies = append(j.cookies, c)
}

func (j *Jar) index(name string) int {
	for i := range j.cookies {
		if j.cookies[i].Name == name {
			return i
		}
	}

	return -1
}

// parseCookie splits a single "name=value" pair; a pair without a separator
// is a value for the empty name.
func parseCookie(s string) Cookie {
	name, value, found := strings.Cut(s, valueSeparator)
	if !found {
		return Cookie{Value: strings.TrimSpace(s)}
	}

	return Cookie{
		Name:  strings.TrimSpace(name),
		Value: strings.TrimSpace(value),
	}
}
