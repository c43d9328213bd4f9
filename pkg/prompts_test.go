package thrivebox

import (
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	"github.com/stretchr/testify/assert"
)

func TestQuestions(t *testing.T) {
	spec.Run(t, "questions", testQuestions, spec.Report(report.Terminal{}))
}

func names(q Questionnaire) []string {
	var out []string
	for _, question := range questions(q) {
		out = append(out, question.Name)
	}
	return out
}

func testQuestions(t *testing.T, when spec.G, it spec.S) {
	var catalog []Plugin

	it.Before(func() {
		catalog = DefaultConfig().Plugins
	})

	it("asks everything in order by default", func() {
		assert.Equal(t,
			[]string{"dirname", "wpuser", "wppassword", "wpemail", "wptitle", "plugins", "theme", "happy"},
			names(Questionnaire{Catalog: catalog, ThemeName: "Flex With Benefits"}))
	})

	it("skips plugins and theme in the basic tier", func() {
		assert.Equal(t,
			[]string{"dirname", "wpuser", "wppassword", "wpemail", "wptitle", "happy"},
			names(Questionnaire{Catalog: catalog, Basic: true}))
	})

	it("skips overridden questions", func() {
		assert.Equal(t,
			[]string{"wppassword", "wpemail", "wptitle", "happy"},
			names(Questionnaire{
				Basic:     true,
				Overrides: map[string]string{KeyDirectoryName: "mysite", KeyWPUser: "editor"},
			}))
	})

	it("validates text answers by length", func() {
		v := lengthValidator(KeyWPUser)
		assert.Error(t, v("a"))
		assert.NoError(t, v("ab"))
	})

	when("pluginIDs", func() {
		it("maps selected names back to identifiers in catalog order", func() {
			ids := pluginIDs(catalog, []string{"SVG Support", "WooCommerce"})
			assert.Equal(t, []string{"woocommerce", "svg-support"}, ids)
		})

		it("returns an empty selection when nothing is chosen", func() {
			ids := pluginIDs(catalog, nil)
			assert.NotNil(t, ids)
			assert.Empty(t, ids)
		})
	})
}
