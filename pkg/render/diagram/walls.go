package diagram

import (
	"github.com/solversa/link-grammar/pkg/dict"
	"github.com/solversa/link-grammar/pkg/linkage"
)

// wallVisibility decides whether the synthetic boundary words are
// displayed. A wall the dictionary never defines is always shown (there
// is nothing to hide). A defined wall is shown iff ShowWalls is forced,
// or more than one arc attaches to it, or exactly one arc attaches and
// that arc does not use the wall's suppressor connector.
//
// The arc spanning the entire sentence attaches to both walls at once
// and is never by itself a reason to show either of them.
func wallVisibility(lk *linkage.Linkage, m *dict.Markers, showWalls bool) (left, right bool) {
	last := lk.NumWords() - 1

	left = true
	if lk.LeftWallDefined {
		attached, suppressed := 0, false
		for _, l := range lk.Links {
			if l.Removed() || l.Left != 0 || l.Right == last {
				continue
			}
			attached++
			if l.LeftConnector == m.LeftWallSuppress {
				suppressed = true
			}
		}
		left = (!suppressed && attached > 0) || attached > 1 || showWalls
	}

	right = true
	if lk.RightWallDefined {
		attached, suppressed := 0, false
		for _, l := range lk.Links {
			if l.Removed() || l.Right != last || l.Left == 0 {
				continue
			}
			attached++
			if l.LeftConnector == m.RightWallSuppress {
				suppressed = true
			}
		}
		right = (!suppressed && attached > 0) || attached > 1 || showWalls
	}

	return left, right
}
