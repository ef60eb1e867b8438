package config

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/Tomas-vilte/matelint/internal/logger"
	"github.com/Tomas-vilte/matelint/internal/ruleset"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

const (
	FormatYAML = "yaml"
	FormatTOML = "toml"

	packageJSON    = "package.json"
	packageJSONKey = "commitlint"
)

// RuleFileNames are looked up in this order in every directory between the
// working directory and the repository root.
var RuleFileNames = []string{
	".commitlintrc",
	".commitlintrc.json",
	".commitlintrc.yaml",
	".commitlintrc.yml",
	".commitlintrc.toml",
	"commitlint.config.json",
	"commitlint.toml",
	packageJSON,
}

// RuleSource is a loaded rule set and where it came from. Path is empty for
// the built-in rules.
type RuleSource struct {
	Path    string
	RuleSet ruleset.RuleSet
}

func (s RuleSource) Builtin() bool {
	return s.Path == ""
}

// ResolveRuleSource picks the rule set to lint with: the explicit file when
// given, otherwise the first rule file found walking up from start to stop,
// otherwise the built-in rules.
func ResolveRuleSource(ctx context.Context, explicit, start, stop string) (RuleSource, error) {
	if explicit != "" {
		rs, err := LoadRuleFile(explicit)
		if err != nil {
			return RuleSource{}, err
		}
		logger.Debug(ctx, "using rule file from flag", "path", explicit)
		return RuleSource{Path: explicit, RuleSet: rs}, nil
	}

	if path, ok := FindRuleFile(start, stop); ok {
		rs, err := LoadRuleFile(path)
		if err != nil {
			return RuleSource{}, err
		}
		logger.Debug(ctx, "found rule file", "path", path)
		return RuleSource{Path: path, RuleSet: rs}, nil
	}

	logger.Debug(ctx, "no rule file found, using built-in rules")
	return RuleSource{RuleSet: ruleset.Default()}, nil
}

// FindRuleFile walks from start towards the filesystem root and stops after
// checking stop. A package.json only counts when it has a commitlint key.
func FindRuleFile(start, stop string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	if stop != "" {
		if abs, err := filepath.Abs(stop); err == nil {
			stop = abs
		}
	}

	for {
		for _, name := range RuleFileNames {
			candidate := filepath.Join(dir, name)
			info, err := os.Stat(candidate)
			if err != nil || info.IsDir() {
				continue
			}
			if name == packageJSON && !hasPackageKey(candidate) {
				continue
			}
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if dir == stop || parent == dir {
			return "", false
		}
		dir = parent
	}
}

func hasPackageKey(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return gjson.GetBytes(data, packageJSONKey).IsObject()
}

// LoadRuleFile reads and validates a rule file. The format follows the file
// extension; files without one are read as YAML, which also covers JSON.
func LoadRuleFile(path string) (ruleset.RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ruleset.RuleSet{}, apperrors.ErrReadRuleFile.WithError(err).WithContext("path", path)
	}

	var rs ruleset.RuleSet
	if filepath.Base(path) == packageJSON {
		result := gjson.GetBytes(data, packageJSONKey)
		if !result.IsObject() {
			return ruleset.RuleSet{}, apperrors.ErrDecodeRuleFile.WithContext("path", path)
		}
		rs, err = DecodeRuleSet([]byte(result.Raw), FormatJSON)
	} else {
		rs, err = DecodeRuleSet(data, FormatForPath(path))
	}
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return ruleset.RuleSet{}, appErr.WithContext("path", path)
		}
		return ruleset.RuleSet{}, err
	}

	if err := rs.Validate(); err != nil {
		return ruleset.RuleSet{}, err
	}
	return rs, nil
}

// FormatForPath maps a file extension to a rule file format.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

func DecodeRuleSet(data []byte, format string) (ruleset.RuleSet, error) {
	var rs ruleset.RuleSet
	var err error

	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &rs)
	case FormatYAML:
		err = yaml.Unmarshal(data, &rs)
	case FormatTOML:
		err = toml.Unmarshal(data, &rs)
	default:
		return ruleset.RuleSet{}, apperrors.ErrUnsupportedFormat.WithContext("format", format)
	}
	if err != nil {
		return ruleset.RuleSet{}, apperrors.ErrDecodeRuleFile.WithError(err)
	}
	return rs, nil
}

func EncodeRuleSet(rs ruleset.RuleSet, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(rs, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(rs); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(rs.Raw()); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, apperrors.ErrUnsupportedFormat.WithContext("format", format)
	}
}
