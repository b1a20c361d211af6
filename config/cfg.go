package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"

	validator "github.com/go-playground/validator/v10"
	sprig "github.com/go-task/slim-sprig/v3"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	OutputConfig struct {
		// inspect prints the debug form of values, css prints what would end up in a stylesheet
		Mode  string `yaml:"mode" validate:"required,oneof=inspect css"`
		Tree  bool   `yaml:"tree"`
		Quote bool   `yaml:"quote"`
		// LineTemplate is executed for every printed value, it is not expanded when configuration is loaded
		LineTemplate string `yaml:"line_template" validate:"required"`
	}

	Config struct {
		Version int           `yaml:"version" validate:"eq=1"`
		Output  OutputConfig  `yaml:"output"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

// NOTE: must match yaml field name above.
const LineTemplateFieldName TemplateFieldName = "line_template"

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(LineTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// only fields we defined are accepted
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkConfig)); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// checkConfig makes sure line template could be executed later.
func checkConfig(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)
	if len(cfg.Output.LineTemplate) == 0 {
		return
	}
	if _, err := template.New(string(LineTemplateFieldName)).Funcs(sprig.FuncMap()).Parse(cfg.Output.LineTemplate); err != nil {
		sl.ReportError(cfg.Output.LineTemplate, "LineTemplate", "LineTemplate", "template", "")
	}
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
