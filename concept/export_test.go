// SPDX-License-Identifier: MIT

package concept

import (
	"github.com/katalvlaran/conceptspace/region"
	"github.com/katalvlaran/conceptspace/space"
)

// White-box bridges for concept_test. Production builds never see them.
var (
	ExportedMinDistance        = minDistance
	ExportedForEachCombination = forEachCombination
	ExportedBallTerm           = ballTerm
)

// ExportedHypervolumeOfBoxes runs the inclusion-exclusion engine on an
// arbitrary box list, which a star-shaped region could not hold.
func (k *Concept) ExportedHypervolumeOfBoxes(sp *space.Space, boxes []region.Box) (float64, error) {
	return k.hypervolumeOfBoxes(sp, boxes)
}
