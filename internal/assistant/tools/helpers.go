package tools

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
)

// taskIDArg accepts a task id sent either as a JSON number or as a numeric string.
type taskIDArg int64

// UnmarshalJSON implements json.Unmarshaler.
func (id *taskIDArg) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*id = 0
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("task_id must be an integer, got %s", data)
	}
	*id = taskIDArg(v)
	return nil
}

// unmarshalArgs decodes tool arguments into target, ensuring that only a single
// JSON object is present and that there are no unknown fields. Empty arguments
// decode as an empty object.
func unmarshalArgs(args json.RawMessage, target any) error {
	if len(bytes.TrimSpace(args)) == 0 {
		args = json.RawMessage(`{}`)
	}

	decoder := json.NewDecoder(bytes.NewReader(args))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return err
	}

	// Reject trailing JSON values after the first object.
	var extra any
	if err := decoder.Decode(&extra); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return fmt.Errorf("tool arguments must contain a single JSON object")
}

func invalidArguments(err error) domain.ToolResult {
	return domain.ToolFailure("Invalid arguments: " + err.Error())
}

// failure maps an error to a tool failure. Domain errors keep their message, anything
// else is reported against the attempted action.
func failure(action string, err error) domain.ToolResult {
	var (
		notFound     *domain.NotFoundErr
		forbidden    *domain.ForbiddenErr
		validation   *domain.ValidationErr
		unauthorized *domain.UnauthorizedErr
	)
	switch {
	case errors.As(err, &notFound), errors.As(err, &forbidden),
		errors.As(err, &validation), errors.As(err, &unauthorized):
		return domain.ToolFailure(err.Error())
	}
	return domain.ToolFailure(fmt.Sprintf("Failed to %s: %v", action, err))
}

func taskIDPtr(id int64) *int64 {
	return &id
}
