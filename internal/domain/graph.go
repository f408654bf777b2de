package domain

// GraphNode is a visualizable node. ID is namespaced as
// "{category}-{naturalKey}" and unique within one KnowledgeGraph.
type GraphNode struct {
	ID         string         `json:"id"`
	Label      string         `json:"label"`
	Category   Category       `json:"category"`
	Properties map[string]any `json:"properties,omitempty"`
	Color      string         `json:"color"`
	Size       int            `json:"size"`
}

// GraphEdge is only materialized when both endpoints exist in the same graph.
type GraphEdge struct {
	ID           string `json:"id"`
	Source       string `json:"source"`
	Target       string `json:"target"`
	RelationType string `json:"relationType"`
	Label        string `json:"label,omitempty"`
}

type KnowledgeGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// NodeIDs returns the set of node ids in the graph.
func (g *KnowledgeGraph) NodeIDs() map[string]bool {
	out := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		out[n.ID] = true
	}
	return out
}
