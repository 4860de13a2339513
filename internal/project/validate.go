package project

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/minecorg.schema.json
var schemaBytes []byte

const schemaURL = "minecorg.schema.json"

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Issue is a single schema violation.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Keyword string `json:"keyword,omitempty"`
}

// InvalidError reports metadata that does not satisfy the schema.
type InvalidError struct {
	Issues []Issue
}

func (e *InvalidError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, issue.Path+": "+issue.Message)
	}
	return "invalid " + MetadataFile + ": " + strings.Join(parts, "; ")
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// ValidateJSON checks raw minecorg.json bytes against the schema. Schema
// violations come back as *InvalidError; anything else is a decode or
// schema failure.
func ValidateJSON(data []byte) error {
	schema, err := getSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", MetadataFile, err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("unexpected validation error type: %w", err)
	}
	return &InvalidError{Issues: extractIssues(ve)}
}

func extractIssues(ve *jsonschema.ValidationError) []Issue {
	var issues []Issue
	collectIssues(ve, &issues)
	if len(issues) == 0 {
		return []Issue{{Message: ve.Error()}}
	}
	return issues
}

// collectIssues walks the error tree down to the leaves.
func collectIssues(ve *jsonschema.ValidationError, issues *[]Issue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, issues)
		}
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	var keyword, msg string
	if ve.ErrorKind != nil {
		if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
			keyword = kw[len(kw)-1]
		}
		msg = ve.ErrorKind.LocalizedString(printer)
	}
	if keyword == "allOf" || keyword == "$ref" {
		return
	}
	*issues = append(*issues, Issue{Path: path, Message: msg, Keyword: keyword})
}
