package sitegist_test

import (
	"testing"

	"github.com/fwojciec/sitegist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		doc := &sitegist.Document{
			SourceURL: "https://example.com/",
			Content:   "reference document",
		}
		assert.NoError(t, doc.Validate())
	})

	t.Run("missing source URL", func(t *testing.T) {
		t.Parallel()

		doc := &sitegist.Document{Content: "reference document"}
		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, sitegist.EINVALID, sitegist.ErrorCode(err))
	})

	t.Run("missing content", func(t *testing.T) {
		t.Parallel()

		doc := &sitegist.Document{SourceURL: "https://example.com/"}
		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, sitegist.EINVALID, sitegist.ErrorCode(err))
	})
}

func TestScrapeResult_Words(t *testing.T) {
	t.Parallel()

	result := &sitegist.ScrapeResult{
		Pages: []sitegist.ScrapedPage{
			{WordCount: 3},
			{WordCount: 7},
		},
	}
	assert.Equal(t, 10, result.Words())
}
