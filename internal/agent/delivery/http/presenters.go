package http

import "productivity-planner/internal/agent"

type toolResp struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

type listToolsResp struct {
	Tools []toolResp `json:"tools"`
	Count int        `json:"count"`
}

func (h *handler) newListToolsResp(decls []agent.FunctionDeclaration) listToolsResp {
	items := make([]toolResp, 0, len(decls))
	for _, d := range decls {
		items = append(items, toolResp{
			Name:        d.Name,
			Description: d.Description,
			Parameters:  d.Parameters,
		})
	}
	return listToolsResp{Tools: items, Count: len(items)}
}

type executeResp struct {
	Tool   string      `json:"tool"`
	Result interface{} `json:"result"`
}
