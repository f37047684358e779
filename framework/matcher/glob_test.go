// +build unit

package matcher

import (
	"testing"

	test "github.com/chain-framework/go-chain/framework/test_helper"
)

func Test_GlobPattern_DoesMatch(t *testing.T) {
	cases := []struct {
		pattern string
		typeTag string
		want    bool
	}{
		{"actor_*", "actor_spawned", true},
		{"actor_*", "reply_sent", false},
		{"*", "anything", true},
		{"reply_sent", "reply_sent", true},
	}
	for _, c := range cases {
		got, err := NewGlobPattern(c.pattern).DoesMatch(c.typeTag)
		test.H(t).IsNil(err)
		if got != c.want {
			t.Fatalf("DoesMatch(%q, %q) = %t, wanted %t", c.pattern, c.typeTag, got, c.want)
		}
	}
}

func Test_GlobPattern_Reusable(t *testing.T) {
	m := NewGlobPattern("actor_*")
	for _, tag := range []string{"actor_spawned", "actor_stopped"} {
		got, err := m.DoesMatch(tag)
		test.H(t).IsNil(err)
		test.H(t).BoolEql(got, true)
	}
}

func Test_GlobPattern_BadPattern(t *testing.T) {
	_, err := NewGlobPattern("[").DoesMatch("anything")
	test.H(t).NotNil(err)
}
