package questionnaire

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/amahle/famcheck/internal/store"
)

//go:embed data/*.json
var bankFS embed.FS

var (
	loadOnce sync.Once
	flows    map[store.AssessmentType]*Flow
	loadErr  error
)

// FlowFor returns the questionnaire flow for an assessment type.
func FlowFor(typ store.AssessmentType) (*Flow, error) {
	if err := load(); err != nil {
		return nil, err
	}
	f, ok := flows[typ]
	if !ok {
		return nil, fmt.Errorf("no questionnaire flow for type %q", typ)
	}
	return f, nil
}

// Flows returns every embedded flow, ordered by household sequence.
func Flows() ([]*Flow, error) {
	if err := load(); err != nil {
		return nil, err
	}
	order := map[store.AssessmentType]int{
		store.TypeCheckup: 0,
		store.TypeParent:  1,
		store.TypeFamily:  2,
	}
	out := make([]*Flow, 0, len(flows))
	for _, f := range flows {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		return order[out[i].Type] < order[out[j].Type]
	})
	return out, nil
}

func load() error {
	loadOnce.Do(func() {
		flows = make(map[store.AssessmentType]*Flow)

		compiled, err := compileBankSchema()
		if err != nil {
			loadErr = fmt.Errorf("compile bank schema: %w", err)
			return
		}

		entries, err := bankFS.ReadDir("data")
		if err != nil {
			loadErr = fmt.Errorf("read bank dir: %w", err)
			return
		}

		for _, entry := range entries {
			raw, err := bankFS.ReadFile("data/" + entry.Name())
			if err != nil {
				loadErr = fmt.Errorf("read bank %s: %w", entry.Name(), err)
				return
			}

			var parsed any
			if err := json.Unmarshal(raw, &parsed); err != nil {
				loadErr = fmt.Errorf("parse bank %s: %w", entry.Name(), err)
				return
			}
			if err := compiled.Validate(parsed); err != nil {
				loadErr = fmt.Errorf("bank %s failed schema validation: %w", entry.Name(), err)
				return
			}

			var flow Flow
			if err := json.Unmarshal(raw, &flow); err != nil {
				loadErr = fmt.Errorf("decode bank %s: %w", entry.Name(), err)
				return
			}
			if err := checkFlow(&flow); err != nil {
				loadErr = fmt.Errorf("bank %s: %w", entry.Name(), err)
				return
			}
			flows[flow.Type] = &flow
		}
	})
	return loadErr
}

func compileBankSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	// Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(bankSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://questionnaire-bank.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return c.Compile(schemaURL)
}

// checkFlow enforces the invariants the JSON Schema cannot express.
func checkFlow(f *Flow) error {
	if f.InterludeIndex >= len(f.Questions) {
		return fmt.Errorf("interlude index %d beyond last step %d", f.InterludeIndex, len(f.Questions)-1)
	}

	codes := make(map[string]bool, len(f.Questions))
	for i, q := range f.Questions {
		if codes[q.Code] {
			return fmt.Errorf("duplicate question code %q at step %d", q.Code, i)
		}
		codes[q.Code] = true

		// Reverse scoring is defined only for the 0-4 scale.
		if q.Reverse && q.AnswerType != ScaleLikert5 {
			return fmt.Errorf("question %q: reverse flag on %s scale", q.Code, q.AnswerType)
		}
	}
	return nil
}
