package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAuthors(t *testing.T) {
	t.Parallel()

	t.Run("Should flatten delimited fields preserving order", func(t *testing.T) {
		t.Parallel()
		fields := []any{
			"John Doe, Jane Smith, Adam Johnson",
			"Alice Williams, Bob Brown",
		}
		names := ExtractAuthors(fields)
		assert.Equal(t, []any{"John Doe", "Jane Smith", "Adam Johnson", "Alice Williams", "Bob Brown"}, names)
	})

	t.Run("Should keep a field without delimiter whole", func(t *testing.T) {
		t.Parallel()
		names := ExtractAuthors([]any{"John Doe"})
		assert.Equal(t, []any{"John Doe"}, names)
	})

	t.Run("Should keep an empty field as one empty name", func(t *testing.T) {
		t.Parallel()
		names := ExtractAuthors([]any{""})
		assert.Equal(t, []any{""}, names)
	})

	t.Run("Should pass non-string values through unsplit", func(t *testing.T) {
		t.Parallel()
		names := ExtractAuthors([]any{nil, "Ann Brown, Carl Doe"})
		assert.Equal(t, []any{nil, "Ann Brown", "Carl Doe"}, names)
	})

	t.Run("Should produce one name per delimiter plus one per field", func(t *testing.T) {
		t.Parallel()
		fields := []any{
			"Doe J., Smith J.",
			"Johnson A.",
			"Williams A., Brown B., Doe J.",
		}
		want := 0
		for _, f := range fields {
			want += strings.Count(f.(string), AuthorDelimiter) + 1
		}
		assert.Len(t, ExtractAuthors(fields), want)
	})
}
