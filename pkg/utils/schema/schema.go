// Package schema generates JSON schemas for the projscope configuration file and analysis report.
package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/yeisme/projscope/pkg/configs"
	"github.com/yeisme/projscope/pkg/models"
)

// GenConfigSchema writes the JSON schema of the configuration file.
// Field names follow the mapstructure tags, the same keys viper reads.
func GenConfigSchema(out io.Writer) error {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
		FieldNameTag:               "mapstructure",
	}
	return write(out, reflector.Reflect(configs.Config{}))
}

// GenReportSchema writes the JSON schema of the report printed by `analyze --json`.
func GenReportSchema(out io.Writer) error {
	reflector := &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
		Mapper:                     reportMapper,
	}
	return write(out, reflector.Reflect(&models.Report{}))
}

// reportMapper 描述自定义 MarshalJSON 的类型
// 依赖列表要么是名称数组，要么是拆分生产/开发依赖的对象
func reportMapper(t reflect.Type) *jsonschema.Schema {
	if t != reflect.TypeOf(models.DependencyList{}) {
		return nil
	}
	names := &jsonschema.Schema{Type: "array", Items: &jsonschema.Schema{Type: "string"}}
	split := &jsonschema.Schema{
		Type:       "object",
		Properties: jsonschema.NewProperties(),
		Required:   []string{"dependencies", "devDependencies"},
	}
	split.Properties.Set("dependencies", names)
	split.Properties.Set("devDependencies", names)
	return &jsonschema.Schema{OneOf: []*jsonschema.Schema{names, split}}
}

func write(out io.Writer, s *jsonschema.Schema) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
