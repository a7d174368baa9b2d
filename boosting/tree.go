package boosting

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gboost/core/parallel"
	"github.com/YuminosukeSato/gboost/pkg/errors"
)

// NodeType distinguishes leaves from internal split nodes.
type NodeType int

const (
	// LeafNode is a terminal node carrying a fitted value.
	LeafNode NodeType = iota
	// NumericalNode splits on a feature threshold.
	NumericalNode
)

// Node is one node of a regression tree, stored in a flat slice and linked
// by child indices.
type Node struct {
	NodeID     int
	LeftChild  int // -1 for leaves
	RightChild int // -1 for leaves
	NodeType   NodeType

	SplitFeature int
	Threshold    float64

	LeafValue float64
}

// IsLeaf reports whether the node is terminal.
func (n *Node) IsLeaf() bool {
	return n.NodeType == LeafNode
}

// Tree is a fixed-depth binary regression tree fitted to pseudo-residuals.
// Each leaf remembers the training rows routed to it so the driver can
// overwrite the naive residual mean with a loss-specific region value.
type Tree struct {
	Nodes []Node

	leaves   []int   // node IDs of leaves, in creation order
	leafRows [][]int // original training-row indices per leaf
}

// PredictRow routes one instance through the learned splits and returns the
// value stored at the reached leaf.
func (t *Tree) PredictRow(x []float64) float64 {
	nodeID := 0
	for nodeID >= 0 && nodeID < len(t.Nodes) {
		node := &t.Nodes[nodeID]
		if node.IsLeaf() {
			return node.LeafValue
		}
		if x[node.SplitFeature] <= node.Threshold {
			nodeID = node.LeftChild
		} else {
			nodeID = node.RightChild
		}
	}
	return 0
}

// NumLeaves returns the number of terminal nodes.
func (t *Tree) NumLeaves() int {
	return len(t.leaves)
}

// Regions returns the training rows routed to each leaf, indexed in leaf
// creation order.
func (t *Tree) Regions() [][]int {
	return t.leafRows
}

// SetRegionValue overwrites the fitted value of the k-th leaf.
func (t *Tree) SetRegionValue(k int, v float64) {
	t.Nodes[t.leaves[k]].LeafValue = v
}

// TreeParams are the stopping rules for tree growth.
type TreeParams struct {
	// MaxDepth limits tree depth; the root is at depth 0.
	MaxDepth int
	// MinLeafSize is the minimum number of rows on each side of a split.
	MinLeafSize int
	// VarianceTol stops growth when the residual variance of a node falls
	// at or below it.
	VarianceTol float64
}

// treeLearner fits regression trees as boosting stages.
type treeLearner struct {
	params TreeParams
}

func (l *treeLearner) FitStage(X *mat.Dense, rows []int, residuals []float64) (Stage, error) {
	if len(rows) == 0 {
		return nil, errors.NewModelError("Tree.Fit", "empty row subset", errors.ErrEmptyData)
	}
	if len(rows) != len(residuals) {
		return nil, errors.NewDimensionError("Tree.Fit", len(rows), len(residuals), 0)
	}

	b := &treeBuilder{X: X, params: l.params, tree: &Tree{}}
	vals := make([]float64, len(residuals))
	copy(vals, residuals)
	b.buildNode(append([]int(nil), rows...), vals, 0)
	return b.tree, nil
}

type treeBuilder struct {
	X      *mat.Dense
	params TreeParams
	tree   *Tree
}

// buildNode grows the subtree over rows (original row indices) and vals
// (their residual targets, kept parallel) and returns the new node's ID.
func (b *treeBuilder) buildNode(rows []int, vals []float64, depth int) int {
	nodeID := len(b.tree.Nodes)

	if (b.params.MaxDepth > 0 && depth >= b.params.MaxDepth) ||
		len(rows) < 2*b.params.MinLeafSize ||
		variance(vals) <= b.params.VarianceTol {
		return b.appendLeaf(rows, vals)
	}

	best := b.findBestSplit(rows, vals)
	if !best.valid {
		return b.appendLeaf(rows, vals)
	}

	b.tree.Nodes = append(b.tree.Nodes, Node{
		NodeID:       nodeID,
		NodeType:     NumericalNode,
		SplitFeature: best.feature,
		Threshold:    best.threshold,
		LeftChild:    -1,
		RightChild:   -1,
	})

	leftRows, leftVals, rightRows, rightVals := b.partition(rows, vals, best)
	left := b.buildNode(leftRows, leftVals, depth+1)
	right := b.buildNode(rightRows, rightVals, depth+1)
	b.tree.Nodes[nodeID].LeftChild = left
	b.tree.Nodes[nodeID].RightChild = right
	return nodeID
}

func (b *treeBuilder) appendLeaf(rows []int, vals []float64) int {
	nodeID := len(b.tree.Nodes)
	b.tree.Nodes = append(b.tree.Nodes, Node{
		NodeID:     nodeID,
		NodeType:   LeafNode,
		LeftChild:  -1,
		RightChild: -1,
		LeafValue:  mean(vals),
	})
	b.tree.leaves = append(b.tree.leaves, nodeID)
	b.tree.leafRows = append(b.tree.leafRows, rows)
	return nodeID
}

func (b *treeBuilder) partition(rows []int, vals []float64, s splitCandidate) (leftRows []int, leftVals []float64, rightRows []int, rightVals []float64) {
	for i, r := range rows {
		if b.X.At(r, s.feature) <= s.threshold {
			leftRows = append(leftRows, r)
			leftVals = append(leftVals, vals[i])
		} else {
			rightRows = append(rightRows, r)
			rightVals = append(rightVals, vals[i])
		}
	}
	return leftRows, leftVals, rightRows, rightVals
}

// splitCandidate is one (feature, threshold) candidate scored by the summed
// squared deviation of residuals in the two partitions.
type splitCandidate struct {
	feature   int
	threshold float64
	sse       float64
	valid     bool
}

// findBestSplit searches every feature in parallel. The reduction runs in
// ascending feature order and prefers strictly lower SSE, so ties resolve to
// the first-encountered feature index and then the lowest threshold,
// independent of goroutine scheduling.
func (b *treeBuilder) findBestSplit(rows []int, vals []float64) splitCandidate {
	_, cols := b.X.Dims()
	return parallel.MapReduce(cols,
		func(j int) splitCandidate { return b.bestSplitForFeature(rows, vals, j) },
		func(acc, next splitCandidate) splitCandidate {
			if next.valid && (!acc.valid || next.sse < acc.sse) {
				return next
			}
			return acc
		},
		splitCandidate{sse: math.Inf(1)},
	)
}

func (b *treeBuilder) bestSplitForFeature(rows []int, vals []float64, feature int) splitCandidate {
	n := len(rows)
	type pair struct {
		value  float64
		target float64
	}
	pairs := make([]pair, n)
	for i, r := range rows {
		pairs[i] = pair{value: b.X.At(r, feature), target: vals[i]}
	}
	sort.Slice(pairs, func(a, c int) bool { return pairs[a].value < pairs[c].value })

	var totalSum, totalSumSq float64
	for _, p := range pairs {
		totalSum += p.target
		totalSumSq += p.target * p.target
	}

	best := splitCandidate{feature: feature, sse: math.Inf(1)}
	minLeaf := b.params.MinLeafSize
	if minLeaf < 1 {
		minLeaf = 1
	}

	var leftSum, leftSumSq float64
	for i := 0; i < n-1; i++ {
		leftSum += pairs[i].target
		leftSumSq += pairs[i].target * pairs[i].target

		// Candidate thresholds are midpoints between distinct values.
		if pairs[i].value == pairs[i+1].value {
			continue
		}
		leftCount := i + 1
		rightCount := n - leftCount
		if leftCount < minLeaf || rightCount < minLeaf {
			continue
		}

		rightSum := totalSum - leftSum
		rightSumSq := totalSumSq - leftSumSq
		sse := (leftSumSq - leftSum*leftSum/float64(leftCount)) +
			(rightSumSq - rightSum*rightSum/float64(rightCount))

		if sse < best.sse {
			best.sse = sse
			best.threshold = (pairs[i].value + pairs[i+1].value) / 2
			best.valid = true
		}
	}
	return best
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func variance(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	m := mean(vals)
	var sum float64
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(vals))
}
