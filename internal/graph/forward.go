package graph

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ascent-ml/ascent/internal/log"
	"github.com/ascent-ml/ascent/internal/tensor"
)

// Forward recomputes every node's value in the subgraph rooted at n, leaves
// first, resolving placeholders against the given name → tensor bindings.
//
// All bound shapes are validated against the declared placeholder shapes
// before any node is mutated; a disagreement fails with ErrShapeMismatch and
// leaves the graph untouched. A declared placeholder missing from the
// bindings is recoverable: a warning is logged and its value becomes the
// all-NaN sentinel, so downstream values degrade to NaN instead of failing.
// Binding keys that match no placeholder are logged and ignored.
//
// The root's resulting value is read from n.Value() after the call.
func (n *Node) Forward(bindings map[string]*tensor.Dense) error {
	topo := n.topology()

	declared := mapset.NewThreadUnsafeSet[string]()
	for _, v := range topo {
		if !v.IsPlaceholder() {
			continue
		}
		declared.Add(v.name)
		if bound, ok := bindings[v.name]; ok {
			if !bound.Shape().Equal(v.shape) {
				return errors.Wrapf(ErrShapeMismatch,
					"placeholder %q declared %v, bound value has %v", v.name, v.shape, bound.Shape())
			}
		}
	}
	for key := range bindings {
		if !declared.Contains(key) {
			log.Logger().Warn("binding matches no placeholder in the graph", zap.String("name", key))
		}
	}

	for _, v := range topo {
		switch {
		case v.IsPlaceholder():
			if bound, ok := bindings[v.name]; ok {
				v.value = bound.Clone()
			} else {
				log.Logger().Warn("placeholder not bound, value set to NaN", zap.String("name", v.name))
				v.value = tensor.FullNaN(v.shape)
			}
		case v.op != nil:
			v.op.forward(v)
		}
		// Leaves and constants keep their value.
	}
	return nil
}
