package data

import (
	"testing"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileEmbedding(t *testing.T) {
	_, err := dataFilesRoot.ReadFile(dataBasePath + "/brand-validation/README.md")
	assert.NoError(t, err)

	files, err := dataFilesRoot.ReadDir(dataBasePath + "/brand-validation")
	assert.NoError(t, err)
	assert.NotEqual(t, 0, len(files))
}

func TestLoadAllDataFilesSkipsNonDataFiles(t *testing.T) {
	sources, err := LoadAllDataFiles("brand-validation")
	require.NoError(t, err)
	require.NotEmpty(t, sources)
	for _, s := range sources {
		assert.NotEqual(t, "README.md", s.BaseName)
		assert.Equal(t, "brand-validation/"+s.BaseName, s.FilePath)
	}
}

func TestLoadDataFileMissing(t *testing.T) {
	_, err := LoadDataFile("brand-validation/no-such-file.yaml")
	assert.Error(t, err)
}

func TestParamsString(t *testing.T) {
	assert.Equal(t, "", SourceInfo{}.ParamsString())

	s := SourceInfo{Params: map[string]ldvalue.Value{
		"PRESENT": ldvalue.String("slug"),
		"MISSING": ldvalue.String("name"),
		"COUNT":   ldvalue.Int(3),
	}}
	assert.Equal(t, "(COUNT=3,MISSING=name,PRESENT=slug)", s.ParamsString())
}

func TestRandomPlaceholdersAreFreshOnEachLoad(t *testing.T) {
	first, err := LoadDataFile("brand-validation/over-long.yaml")
	require.NoError(t, err)
	second, err := LoadDataFile("brand-validation/over-long.yaml")
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.NotEqual(t, string(first[0].Data), string(second[0].Data))
	assert.NotContains(t, string(first[0].Data), "<random:")
}
