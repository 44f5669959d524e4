// Package linkage defines the data model for completed parse results.
//
// A Linkage is the output of the sentence parser: an ordered sequence of
// words connected by labeled arcs (links). This package does not parse
// anything itself; it is the interchange boundary between the parser and
// the rendering packages. Linkages arrive as JSON documents (see
// [ReadLinkage]) and are treated as immutable once decoded.
//
// # Model
//
// Word positions are 0-based. Position 0 is conventionally the left
// boundary marker (LEFT-WALL) and the last position the right boundary
// marker, when the producing dictionary defines them. A word that was
// never attached to any link has HasToken=false and is displayed using
// its Unsplit text.
//
// A Link with a negative Left index is "removed": it survives in the
// link array for index stability but is skipped by every renderer.
package linkage

import (
	"github.com/solversa/link-grammar/pkg/errors"
)

// Word is one sentence position as chosen by the parser.
type Word struct {
	// Token is the chosen dictionary token for this position, possibly
	// carrying a disambiguation subscript ("dog.n") or representing a
	// split-off suffix ("=ing"). Meaningless when HasToken is false.
	Token string `json:"token,omitempty" bson:"token,omitempty"`

	// HasToken reports whether the parser attached this position at all.
	// Island words (never linked) have HasToken=false.
	HasToken bool `json:"has_token" bson:"has_token"`

	// Unsplit is the original surface word before any stem/suffix split.
	Unsplit string `json:"unsplit,omitempty" bson:"unsplit,omitempty"`

	// Disjunct is the connector-requirement string satisfied by the
	// chosen parse alternative, e.g. "Ss- Os+".
	Disjunct string `json:"disjunct,omitempty" bson:"disjunct,omitempty"`

	// Cost is the disjunct cost of the chosen alternative.
	Cost float64 `json:"cost,omitempty" bson:"cost,omitempty"`
}

// Link is a labeled arc between two word positions.
// Links are never mutated after the linkage is finalized.
type Link struct {
	// Left and Right are word indices with Left < Right.
	// A negative Left marks a removed link.
	Left  int `json:"left" bson:"left"`
	Right int `json:"right" bson:"right"`

	// Label is the link type, e.g. "Ss" or "MVp".
	Label string `json:"label" bson:"label"`

	// LeftConnector and RightConnector name the two connectors that
	// matched to form this link.
	LeftConnector  string `json:"left_connector,omitempty" bson:"left_connector,omitempty"`
	RightConnector string `json:"right_connector,omitempty" bson:"right_connector,omitempty"`

	// Domains is the ordered list of structural domains enclosing the
	// link, printed as parenthetical prefixes in the link listing.
	Domains []string `json:"domains,omitempty" bson:"domains,omitempty"`
}

// Removed reports whether the link was removed by post-processing and
// must be skipped by all renderers.
func (l Link) Removed() bool { return l.Left < 0 }

// Linkage is a completed parse result for one sentence.
type Linkage struct {
	Words []Word `json:"words" bson:"words"`
	Links []Link `json:"links" bson:"links"`

	// LeftWallDefined and RightWallDefined report whether the producing
	// dictionary defines the synthetic boundary words. They control
	// boundary substitution and wall visibility.
	LeftWallDefined  bool `json:"left_wall_defined,omitempty" bson:"left_wall_defined,omitempty"`
	RightWallDefined bool `json:"right_wall_defined,omitempty" bson:"right_wall_defined,omitempty"`

	// Violation is the name of the post-processing rule this linkage
	// violates, empty for sound linkages.
	Violation string `json:"violation,omitempty" bson:"violation,omitempty"`
}

// NumWords returns the number of word positions, including boundary
// markers when defined.
func (lk *Linkage) NumWords() int { return len(lk.Words) }

// NumLinks returns the number of links, including removed ones.
func (lk *Linkage) NumLinks() int { return len(lk.Links) }

// Validate checks the structural invariants every renderer relies on:
// indices in range, left strictly below right for live links. A removed
// link (negative Left) is exempt from the ordering check.
func (lk *Linkage) Validate() error {
	if len(lk.Words) == 0 {
		return errors.New(errors.ErrCodeInvalidLinkage, "linkage has no words")
	}
	n := len(lk.Words)
	for i, l := range lk.Links {
		if l.Removed() {
			continue
		}
		if l.Left >= n || l.Right >= n || l.Right < 0 {
			return errors.New(errors.ErrCodeInvalidLinkage,
				"link %d (%s) indices [%d,%d] out of range for %d words", i, l.Label, l.Left, l.Right, n)
		}
		if l.Left >= l.Right {
			return errors.New(errors.ErrCodeInvalidLinkage,
				"link %d (%s) has left %d >= right %d", i, l.Label, l.Left, l.Right)
		}
	}
	return nil
}
