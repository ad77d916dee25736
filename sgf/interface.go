package sgf

import "github.com/sgf-format/go-sgf/schema"

// Interface converts the collection to plain maps and slices so it can
// be handed to generic JSON or YAML marshalers.
func (c Collection) Interface() any {
	trees := make([]any, len(c))
	for i, gt := range c {
		trees[i] = gt.Interface()
	}
	return trees
}

func (gt *GameTree) Interface() any {
	nodes := make([]any, len(gt.Nodes))
	for i, n := range gt.Nodes {
		nodes[i] = n.Interface()
	}
	res := map[string]any{"nodes": nodes}
	if len(gt.Subtrees) > 0 {
		subs := make([]any, len(gt.Subtrees))
		for i, st := range gt.Subtrees {
			subs[i] = st.Interface()
		}
		res["subtrees"] = subs
	}
	return res
}

func (n *Node) Interface() any {
	res := make(map[string]any, len(n.Props))
	for _, p := range n.Props {
		if len(p.Values) == 1 {
			res[p.Ident] = p.Values[0].Interface()
			continue
		}
		vals := make([]any, len(p.Values))
		for i, v := range p.Values {
			vals[i] = v.Interface()
		}
		res[p.Ident] = vals
	}
	return res
}

func (v *Value) Interface() any {
	if len(v.Compose) == 2 {
		return []any{v.Compose[0].Interface(), v.Compose[1].Interface()}
	}
	switch v.Kind {
	case schema.None:
		return nil
	case schema.Number, schema.Double:
		if v.Int64 == nil {
			return nil
		}
		return *v.Int64
	case schema.Real:
		if v.Float64 == nil {
			return nil
		}
		return *v.Float64
	case schema.Color:
		return v.Color
	default:
		return v.Str
	}
}
