package export

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/invopop/jsonschema"
)

// Schema reflects the JSON Schema of Document.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	s := r.ReflectFromType(reflect.TypeOf(Document{}))
	s.Version = jsonschema.Version
	s.Title = "Marble Level"
	s.Description = "Procedurally generated marble level: rooms, pass/wall rows and classified tiles."
	return s
}

// WriteSchema writes the indented schema followed by a newline.
func WriteSchema(w io.Writer) error {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal schema: %w", err)
	}
	if _, err = w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("export: write schema: %w", err)
	}
	return nil
}
