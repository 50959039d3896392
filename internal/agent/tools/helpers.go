package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"productivity-planner/internal/agent"
	"productivity-planner/internal/model"
)

// decodeArgs maps the loosely typed tool arguments onto dst.
func decodeArgs(params map[string]interface{}, dst any) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("%w: %v", agent.ErrInvalidArguments, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", agent.ErrInvalidArguments, err)
	}
	return nil
}

func scopeFrom(ctx context.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		return model.Scope{}, agent.ErrMissingScope
	}
	return sc, nil
}

var taskIDsSchema = map[string]interface{}{
	"type":        "array",
	"items":       map[string]interface{}{"type": "string"},
	"description": "Ids of the tasks to analyze",
}
