package questionnaire

// bankSchema is the JSON Schema every embedded questionnaire bank must
// satisfy. Banks ship inside the binary, so a violation is a packaging bug
// caught at first load.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"type": map[string]any{
			"type": "string",
			"enum": []any{"checkup", "parent", "family"},
		},
		"title": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"interlude_index": map[string]any{
			"type":    "integer",
			"minimum": -1,
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string", "minLength": 1},
					"code": map[string]any{"type": "string", "minLength": 1},
					"text": map[string]any{"type": "string", "minLength": 1},
					"category": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"answer_type": map[string]any{
						"type": "string",
						"enum": []any{"likert5", "impact4", "yesno", "agree6"},
					},
					"reverse": map[string]any{"type": "boolean"},
				},
				"required":             []any{"id", "code", "text", "category", "answer_type"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"type", "title", "interlude_index", "questions"},
	"additionalProperties": false,
}
