package main

import (
	"os"

	"github.com/basewarphq/bwlambda/bwlcfg"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// loadSnapshotFile reads a flat YAML mapping of variable names to values.
// Scalars are kept as written, so "on" stays "on" rather than becoming a bool.
func loadSnapshotFile(path string) (bwlcfg.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return bwlcfg.Snapshot{}, errors.Wrapf(err, "read %s", path)
	}
	return parseSnapshot(data)
}

func parseSnapshot(data []byte) (bwlcfg.Snapshot, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return bwlcfg.Snapshot{}, errors.Wrap(err, "parse env file")
	}
	if len(doc.Content) == 0 {
		return bwlcfg.NewSnapshot(nil), nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return bwlcfg.Snapshot{}, errors.Newf("env file must be a mapping, got line %d", root.Line)
	}

	vars := make(map[string]string, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return bwlcfg.Snapshot{}, errors.Newf("value of %s on line %d must be a scalar", key.Value, val.Line)
		}
		vars[key.Value] = val.Value
	}
	return bwlcfg.NewSnapshot(vars), nil
}
