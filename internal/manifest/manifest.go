package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// FileName is the manifest file name inside a project root.
const FileName = "package.json"

// Scripts is the run-script block injected into the manifest. Field order
// is the order written to disk.
type Scripts struct {
	Start string `json:"start"`
	Dev   string `json:"dev"`
}

var formatOptions = &pretty.Options{
	Indent:   "  ",
	SortKeys: false,
}

// Read loads path and checks that it holds a JSON object.
func Read(fs afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("manifest %s is not valid JSON", path)
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("manifest %s is not a JSON object", path)
	}
	return data, nil
}

// SetScripts replaces the top-level "scripts" value with s. A missing key
// is appended at the end of the object.
func SetScripts(data []byte, s Scripts) ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding scripts: %w", err)
	}
	out, err := sjson.SetRawBytes(data, "scripts", raw)
	if err != nil {
		return nil, fmt.Errorf("setting scripts: %w", err)
	}
	return out, nil
}

// Format re-indents data with two spaces per level.
func Format(data []byte) []byte {
	return pretty.PrettyOptions(data, formatOptions)
}

// Patch rewrites the manifest at path with s as its scripts block and
// returns the bytes written.
func Patch(fs afero.Fs, path string, s Scripts) ([]byte, error) {
	data, err := Read(fs, path)
	if err != nil {
		return nil, err
	}

	patched, err := SetScripts(data, s)
	if err != nil {
		return nil, err
	}
	patched = Format(patched)

	if err := afero.WriteFile(fs, path, patched, 0644); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}
	return patched, nil
}

// ScriptsOf returns the scripts object of data as a key/value map.
func ScriptsOf(data []byte) map[string]string {
	out := map[string]string{}
	gjson.GetBytes(data, "scripts").ForEach(func(k, v gjson.Result) bool {
		out[k.String()] = v.String()
		return true
	})
	return out
}

// Keys returns the top-level keys of data in document order.
func Keys(data []byte) []string {
	var keys []string
	gjson.ParseBytes(data).ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	return keys
}
