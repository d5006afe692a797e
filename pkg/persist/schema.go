package persist

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Users describes users.json: username -> plaintext password.
var Users = jsonschema.MustCompileString("users.schema.json", `{
	"type": "object",
	"additionalProperties": {"type": "string"}
}`)

// Tasks describes <user>_tasks.json.
var Tasks = jsonschema.MustCompileString("tasks.schema.json", `{
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"title":  {"type": "string"},
			"desc":   {"type": "string"},
			"due":    {"type": "string"},
			"status": {"type": "string"}
		},
		"required": ["title", "desc", "due", "status"]
	}
}`)

// describe flattens a schema validation error into its leaf messages
func describe(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	var msgs []string
	collect(ve, &msgs)
	return strings.Join(msgs, "; ")
}

func collect(err *jsonschema.ValidationError, msgs *[]string) {
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*msgs = append(*msgs, loc+": "+err.Message)
		return
	}
	for _, c := range err.Causes {
		collect(c, msgs)
	}
}
