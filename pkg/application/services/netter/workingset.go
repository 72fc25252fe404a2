package netter

import (
	"sort"
	"sync"

	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
)

// workingSet is the Run's mutable Requirements/Supplies store. Explosion
// writes (new dependent requirements at strictly lower levels) are
// serialised through its mutex, which is the single-writer sink §5 requires
// when parts within a level are netted concurrently.
type workingSet struct {
	mu                 sync.Mutex
	requirementsByPart map[entities.Part][]*entities.Requirement
	suppliesByPart     map[entities.Part][]*entities.Supply
}

func newWorkingSet(requirements []entities.Requirement, supplies []entities.Supply) *workingSet {
	ws := &workingSet{
		requirementsByPart: make(map[entities.Part][]*entities.Requirement),
		suppliesByPart:     make(map[entities.Part][]*entities.Supply),
	}
	for i := range requirements {
		r := requirements[i]
		ws.requirementsByPart[r.Part] = append(ws.requirementsByPart[r.Part], &r)
	}
	for i := range supplies {
		s := supplies[i]
		ws.suppliesByPart[s.Part] = append(ws.suppliesByPart[s.Part], &s)
	}
	return ws
}

// requirementsFor returns part's requirements sorted by dateRequired
// ascending. The returned pointers alias the working set's own records, so
// mutating their Quantity during allocation is visible on subsequent reads.
func (ws *workingSet) requirementsFor(part entities.Part) []*entities.Requirement {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	reqs := append([]*entities.Requirement(nil), ws.requirementsByPart[part]...)
	sort.Slice(reqs, func(i, j int) bool {
		return reqs[i].DateRequired.Before(reqs[j].DateRequired)
	})
	return reqs
}

// suppliesFor returns part's supplies sorted by dueDate ascending (the
// past-due sentinel thus sorts first).
func (ws *workingSet) suppliesFor(part entities.Part) []*entities.Supply {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	supplies := append([]*entities.Supply(nil), ws.suppliesByPart[part]...)
	sort.Slice(supplies, func(i, j int) bool {
		return supplies[i].DueDate.Before(supplies[j].DueDate)
	})
	return supplies
}

// addRequirement inserts a dependent-demand requirement, generated by
// exploding a planned order into a lower level. Safe to call concurrently
// with reads/writes for other parts.
func (ws *workingSet) addRequirement(r entities.Requirement) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.requirementsByPart[r.Part] = append(ws.requirementsByPart[r.Part], &r)
}

// allRequirements returns every requirement currently in the working set,
// across all parts, in no particular order.
func (ws *workingSet) allRequirements() []entities.Requirement {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	var all []entities.Requirement
	for _, reqs := range ws.requirementsByPart {
		for _, r := range reqs {
			all = append(all, *r)
		}
	}
	return all
}

// allSupplies returns every supply currently in the working set.
func (ws *workingSet) allSupplies() []entities.Supply {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	var all []entities.Supply
	for _, supplies := range ws.suppliesByPart {
		for _, s := range supplies {
			all = append(all, *s)
		}
	}
	return all
}
