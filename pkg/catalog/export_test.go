package catalog_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ketchup/pkg/catalog"
)

func TestCatalog_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("keeps catalog order", func(t *testing.T) {
		t.Parallel()
		c := catalog.MustNew(
			catalog.WithMessage("zeta", "Z"),
			catalog.WithMessage("alpha", "A"),
		)
		data, err := json.Marshal(c)
		require.NoError(t, err)
		require.JSONEq(t, `{"zeta":"Z","alpha":"A"}`, string(data))
		require.Equal(t, `{"zeta":"Z","alpha":"A"}`, string(data))
	})

	t.Run("round-trips the default catalog", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(catalog.Default())
		require.NoError(t, err)

		var decoded map[string]string
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Len(t, decoded, catalog.Default().Len())
		require.Equal(t, "Must be between $arg1 and $arg2.", decoded[catalog.RuleRange])
	})

	t.Run("empty catalog", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(catalog.MustNew())
		require.NoError(t, err)
		require.Equal(t, `{}`, string(data))
	})
}

func TestCatalog_WriteJSON(t *testing.T) {
	t.Parallel()

	c := catalog.MustNew(
		catalog.WithMessage("required", "This field is required."),
		catalog.WithMessage("min", "Must be at least $arg1."),
	)

	var buf bytes.Buffer
	require.NoError(t, c.WriteJSON(&buf))
	require.Equal(t, "{\n  \"required\": \"This field is required.\",\n  \"min\": \"Must be at least $arg1.\"\n}\n", buf.String())
}

func TestCatalog_WriteJS(t *testing.T) {
	t.Parallel()

	c := catalog.MustNew(
		catalog.WithMessage("required", "This field is required."),
		catalog.WithMessage("range", "Must be between $arg1 and $arg2."),
	)

	t.Run("default target", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, c.WriteJS(&buf, ""))
		require.Equal(t,
			"$.fn.ketchup.messages = {\n"+
				"  \"required\": \"This field is required.\",\n"+
				"  \"range\": \"Must be between $arg1 and $arg2.\"\n"+
				"};\n",
			buf.String())
	})

	t.Run("custom target", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, c.WriteJS(&buf, "window.messages"))
		require.True(t, strings.HasPrefix(buf.String(), "window.messages = {\n"))
	})

	t.Run("escapes script-sensitive characters", func(t *testing.T) {
		t.Parallel()
		c := catalog.MustNew(catalog.WithMessage("x", `</script><b>"quoted"</b>`))
		var buf bytes.Buffer
		require.NoError(t, c.WriteJS(&buf, ""))
		require.NotContains(t, buf.String(), "</script>")
		require.Contains(t, buf.String(), `\u003c/script\u003e`)
		require.Contains(t, buf.String(), `\"quoted\"`)
	})

	t.Run("writes every default rule", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, catalog.Default().WriteJS(&buf, catalog.DefaultJSTarget))
		for _, rule := range catalog.Default().Rules() {
			require.Contains(t, buf.String(), `"`+rule+`": `)
		}
	})
}
