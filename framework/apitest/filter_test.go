package apitest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filtersFor(t *testing.T, run, skip []string) RegexFilters {
	var r RegexFilters
	for _, s := range run {
		require.NoError(t, r.Run.Set(s))
	}
	for _, s := range skip {
		require.NoError(t, r.Skip.Set(s))
	}
	return r
}

func idOf(path string) TestID {
	if path == "" {
		return nil
	}
	return TestID(strings.Split(path, "/"))
}

func TestRegexFilters(t *testing.T) {
	for _, group := range []struct {
		name     string
		run      []string
		skip     []string
		selected []string
		excluded []string
	}{
		{
			name:     "no patterns",
			selected: []string{"", "brands", "brands/create", "users/login/invalid password"},
		},
		{
			name:     "run one area",
			run:      []string{"brands"},
			selected: []string{"", "brands", "brands/create", "subbrands"},
			excluded: []string{"products", "products/brands"},
		},
		{
			name:     "run a nested test",
			run:      []string{"brands/create"},
			selected: []string{"", "brands", "brands/create", "brands/create/duplicate slug"},
			excluded: []string{"products", "brands/delete"},
		},
		{
			name:     "run either of two areas",
			run:      []string{"brands", "users"},
			selected: []string{"brands/list", "users/login"},
			excluded: []string{"products/search"},
		},
		{
			name:     "anchored level",
			run:      []string{"^brands$/^list$"},
			selected: []string{"brands/list"},
			excluded: []string{"subbrands/list", "brands/list all"},
		},
		{
			name:     "skip one area",
			skip:     []string{"products"},
			selected: []string{"", "brands", "brands/products"},
			excluded: []string{"products", "products/search"},
		},
		{
			name:     "skip a nested test leaves its parent",
			skip:     []string{"brands/delete"},
			selected: []string{"", "brands", "brands/create", "products/delete"},
			excluded: []string{"brands/delete", "brands/delete/with products"},
		},
		{
			name:     "skip wins over run",
			run:      []string{"brands"},
			skip:     []string{"brands/search"},
			selected: []string{"brands/list"},
			excluded: []string{"brands/search", "products/search"},
		},
	} {
		t.Run(group.name, func(t *testing.T) {
			r := filtersFor(t, group.run, group.skip)
			for _, s := range group.selected {
				assert.True(t, r.Match(idOf(s)), "should run %q", s)
			}
			for _, s := range group.excluded {
				assert.False(t, r.Match(idOf(s)), "should not run %q", s)
			}
		})
	}
}

func TestParsePatternReportsBadLevel(t *testing.T) {
	_, err := ParsePattern("brands/(unclosed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `level 2 of pattern "brands/(unclosed"`)

	var l PatternList
	assert.Error(t, l.Set("["))
	assert.Len(t, l, 0)
}

func TestPatternListString(t *testing.T) {
	r := filtersFor(t, []string{"brands", "users/login"}, nil)
	assert.Equal(t, `"brands" or "users/login"`, r.Run.String())
	assert.True(t, r.IsDefined())
	assert.False(t, RegexFilters{}.IsDefined())
}

func TestFilterFunc(t *testing.T) {
	var f Filter = FilterFunc(func(id TestID) bool { return len(id) < 2 })
	assert.True(t, f.Match(TestID{"brands"}))
	assert.False(t, f.Match(TestID{"brands", "list"}))
}

func TestDescribeFilters(t *testing.T) {
	assert.Len(t, DescribeFilters(RegexFilters{}, []string{"a"}, []string{"a"}), 0)

	r := filtersFor(t, []string{"brands"}, []string{"products/list"})
	lines := DescribeFilters(r, []string{"admin-credentials", "user-credentials"}, []string{"admin-credentials"})
	assert.Equal(t, []string{
		"Some tests will be skipped based on the filter criteria for this test run:",
		`  skip any not matching "brands"`,
		`  skip any matching "products/list"`,
		"Some tests will be skipped because the configuration does not provide:",
		"  user-credentials",
	}, lines)
}
