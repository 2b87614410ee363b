package models

import (
	"encoding/json"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	dErrors "workshop/pkg/domain-errors"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DecodeRequests reads a batch of requests: a JSON array or a YAML sequence.
// Empty input yields an empty batch.
func DecodeRequests(r io.Reader, format string) ([]RegistrationRequest, error) {
	var reqs []RegistrationRequest
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&reqs)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&reqs)
	default:
		return nil, dErrors.New(dErrors.CodeBadRequest, "unsupported input format "+format)
	}
	if errors.Is(err, io.EOF) {
		return []RegistrationRequest{}, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "could not decode "+format+" input")
	}
	if reqs == nil {
		reqs = []RegistrationRequest{}
	}
	return reqs, nil
}
