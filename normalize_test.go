package prodmd_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/prodmd"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty input", input: "", want: ""},
		{name: "whitespace only", input: " \n\t ", want: ""},
		{name: "collapses whitespace runs", input: "  Widget \n\n Pro\t3000  ", want: "Widget Pro 3000"},
		{name: "strips bidi and zero width marks", input: "\u200eWid\u200bget\u200f \u00adPro\u200c\u200d", want: "Widget Pro"},
		{name: "decodes fixed entity set", input: "A &amp; B &lt;C&gt; &#39;d&#39; &quot;e&quot;", want: `A & B <C> 'd' "e"`},
		{name: "decodes nbsp entity as space", input: "12,99&nbsp;€", want: "12,99 €"},
		{name: "treats no-break space as whitespace", input: "12,99\u00a0€", want: "12,99 €"},
		{name: "decodes entities sequentially", input: "&amp;lt;", want: "<"},
		{name: "leaves other entities untouched", input: "caf&eacute;", want: "caf&eacute;"},
		{name: "drops invalid utf-8", input: "ok\xffok", want: "okok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, prodmd.Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"  a  b ", "x&amp;y", "\u200eé\u00a0è", "plain"}
	for _, in := range inputs {
		once := prodmd.Normalize(in)
		assert.Equal(t, once, prodmd.Normalize(once), "input %q", in)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("keeps values at or under the cap", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "abc", prodmd.Truncate("abc", 3))
		assert.Equal(t, "ab", prodmd.Truncate("ab", 3))
	})

	t.Run("cuts longer values to exactly the cap with ellipsis", func(t *testing.T) {
		t.Parallel()

		in := strings.Repeat("x", 200)
		got := prodmd.Truncate(in, 150)

		assert.Equal(t, 150, prodmd.Length(got))
		assert.True(t, strings.HasSuffix(got, prodmd.Ellipsis))
		assert.Equal(t, strings.Repeat("x", 147)+"...", got)
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		t.Parallel()

		in := strings.Repeat("é", 20)
		got := prodmd.Truncate(in, 10)

		assert.Equal(t, strings.Repeat("é", 7)+"...", got)
	})

	t.Run("non-positive cap disables truncation", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "abcdef", prodmd.Truncate("abcdef", 0))
	})
}
