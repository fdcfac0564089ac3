package prediction

import (
	"fmt"
	"math"
	"sort"

	apperrors "rtk-backend/internal/errors"
)

// Node is one entry of a hardware tree. Parts carry their per-unit hazard
// rate; assemblies have theirs computed from their children.
type Node struct {
	ID         string
	ParentID   string
	Assembly   bool
	Quantity   int
	HazardRate float64
}

// Contribution is one child's share of an assembly's hazard rate.
type Contribution struct {
	ID         string  `json:"id"`
	HazardRate float64 `json:"hazard_rate"`
	Percent    float64 `json:"percent"`
}

// Summary is the rolled-up reliability of an assembly.
type Summary struct {
	ID            string         `json:"id"`
	HazardRate    float64        `json:"hazard_rate"`
	MTBF          float64        `json:"mtbf"`
	Reliability   float64        `json:"reliability"`
	Contributions []Contribution `json:"contributions"`
}

// MTBF returns multiplier / lambda, or 0 when lambda is zero.
func MTBF(lambda, multiplier float64) float64 {
	if lambda <= 0 {
		return 0
	}
	return multiplier / lambda
}

// Reliability returns exp(-lambda t / multiplier).
func Reliability(lambda, t, multiplier float64) float64 {
	if multiplier <= 0 {
		return 0
	}
	return math.Exp(-lambda * t / multiplier)
}

// Rollup sums child hazard rates (rate times quantity) into every assembly,
// deepest assemblies first. Node hazard rates of assemblies are replaced with
// the rolled-up value. The summaries are keyed by assembly id.
func Rollup(nodes []*Node, missionTime, multiplier float64) (map[string]*Summary, error) {
	byID := make(map[string]*Node, len(nodes))
	children := make(map[string][]*Node)
	for _, n := range nodes {
		byID[n.ID] = n
	}
	for _, n := range nodes {
		if n.ParentID == "" {
			continue
		}
		parent, ok := byID[n.ParentID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrParentHardwareNotFound, n.ParentID)
		}
		if !parent.Assembly {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrParentNotAssembly, parent.ID)
		}
		children[n.ParentID] = append(children[n.ParentID], n)
	}

	order, err := postOrder(nodes, children)
	if err != nil {
		return nil, err
	}

	summaries := make(map[string]*Summary)
	for _, n := range order {
		if !n.Assembly {
			continue
		}
		kids := children[n.ID]
		sort.Slice(kids, func(i, j int) bool { return kids[i].ID < kids[j].ID })

		s := &Summary{ID: n.ID, Contributions: make([]Contribution, 0, len(kids))}
		for _, k := range kids {
			lambda := k.HazardRate * float64(quantityOf(k))
			s.HazardRate += lambda
			s.Contributions = append(s.Contributions, Contribution{ID: k.ID, HazardRate: lambda})
		}
		for i := range s.Contributions {
			if s.HazardRate > 0 {
				s.Contributions[i].Percent = 100.0 * s.Contributions[i].HazardRate / s.HazardRate
			}
		}
		s.MTBF = MTBF(s.HazardRate, multiplier)
		s.Reliability = Reliability(s.HazardRate, missionTime, multiplier)
		n.HazardRate = s.HazardRate
		summaries[n.ID] = s
	}
	return summaries, nil
}

func quantityOf(n *Node) int {
	if n.Quantity < 1 {
		return 1
	}
	return n.Quantity
}

// postOrder lists nodes children-first and rejects cycles.
func postOrder(nodes []*Node, children map[string][]*Node) ([]*Node, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(nodes))
	out := make([]*Node, 0, len(nodes))

	var visit func(n *Node) error
	visit = func(n *Node) error {
		switch state[n.ID] {
		case visiting:
			return fmt.Errorf("%w: %s", apperrors.ErrAssemblyCycle, n.ID)
		case done:
			return nil
		}
		state[n.ID] = visiting
		for _, c := range children[n.ID] {
			if err := visit(c); err != nil {
				return err
			}
		}
		state[n.ID] = done
		out = append(out, n)
		return nil
	}

	for _, n := range nodes {
		if err := visit(n); err != nil {
			return nil, err
		}
	}
	return out, nil
}
