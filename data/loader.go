package data

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

//go:embed data-files
var dataFilesRoot embed.FS

const dataBasePath = "data-files"

// SourceInfo represents JSON or YAML data that was read from a file, after post-processing to expand
// constants, parameters, and random placeholders. A non-parameterized file produces one SourceInfo;
// a parameterized file produces one per parameter set, each with its own version of Data.
type SourceInfo struct {
	FilePath string
	BaseName string
	Params   map[string]ldvalue.Value
	Data     []byte
}

func (s SourceInfo) ParseInto(target interface{}) error {
	if err := decodeDataFile(s.Data, target); err != nil {
		return fmt.Errorf("error parsing %q %s: %w", s.BaseName, s.ParamsString(), err)
	}
	return nil
}

// ParamsString describes the parameter set in a stable order, such as "(FIELD=name,OTHER=slug)".
func (s SourceInfo) ParamsString() string {
	if len(s.Params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s.Params))
	for k := range s.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := s.Params[k]
		if v.IsString() {
			parts = append(parts, k+"="+v.StringValue())
		} else {
			parts = append(parts, k+"="+v.JSONString())
		}
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// LoadDataFile reads a data file and performs any necessary substitutions. It can return more than
// one SourceInfo because any file can be parameterized. Random placeholders are expanded again on
// every call, so each load produces fresh values.
//
// The path parameter is relative to data/data-files.
func LoadDataFile(path string) ([]SourceInfo, error) {
	data, err := dataFilesRoot.ReadFile(dataBasePath + "/" + path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	sources, err := expandSubstitutions(data)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	baseName := filepath.Base(path)
	ret := make([]SourceInfo, 0, len(sources))
	for _, source := range sources {
		source.FilePath = path
		source.BaseName = baseName
		source.Data = expandRandomPlaceholders(source.Data)
		ret = append(ret, source)
	}
	return ret, nil
}

// LoadAllDataFiles reads every data file in a directory, in name order.
//
// The path parameter is relative to data/data-files.
func LoadAllDataFiles(path string) ([]SourceInfo, error) {
	files, err := dataFilesRoot.ReadDir(dataBasePath + "/" + path)
	if err != nil {
		return nil, err
	}
	var ret []SourceInfo
	for _, file := range files {
		if file.IsDir() || !isDataFileName(file.Name()) {
			continue
		}
		sources, err := LoadDataFile(path + "/" + file.Name())
		if err != nil {
			return nil, err
		}
		ret = append(ret, sources...)
	}
	return ret, nil
}

func isDataFileName(name string) bool {
	switch filepath.Ext(name) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
