package form

import (
	"fmt"
	"slices"
	"sync"

	"resume-builder/internal/model"
)

// Holder owns the record being edited. Every mutation builds a new record
// from a deep copy and swaps it in whole, so a snapshot handed out earlier
// never changes.
type Holder struct {
	mu        sync.Mutex
	rec       model.ResumeRecord
	taxonomy  *model.Taxonomy
	listeners []func(model.ResumeRecord)
}

// NewHolder starts from a copy of initial.
func NewHolder(initial model.ResumeRecord) *Holder {
	return &Holder{rec: initial.Clone(), taxonomy: model.SkillTaxonomy()}
}

// OnChange registers fn to receive a snapshot after every successful
// mutation. fn runs on the mutating goroutine, outside the lock.
func (h *Holder) OnChange(fn func(model.ResumeRecord)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, fn)
}

func (h *Holder) Snapshot() model.ResumeRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rec.Clone()
}

func (h *Holder) update(fn func(next *model.ResumeRecord) error) error {
	h.mu.Lock()
	next := h.rec.Clone()
	if err := fn(&next); err != nil {
		h.mu.Unlock()
		return err
	}
	h.rec = next
	listeners := slices.Clone(h.listeners)
	h.mu.Unlock()

	for _, l := range listeners {
		l(next.Clone())
	}
	return nil
}

// SetField assigns value to the input called name. Checkbox inputs take a
// boolean string.
func (h *Holder) SetField(name, value string) error {
	f, err := ParseField(name)
	if err != nil {
		return err
	}
	return h.Set(f, value)
}

func (h *Holder) Set(f Field, value string) error {
	return h.update(func(next *model.ResumeRecord) error {
		return f.apply(next, value)
	})
}

// ToggleSkill selects label when it is not selected and deselects it when it
// is. Labels keep their selection order.
func (h *Holder) ToggleSkill(category, subcategory, label string) error {
	if !h.taxonomy.Contains(category, subcategory, label) {
		return fmt.Errorf("%w: %s / %s / %s", ErrUnknownSkill, category, subcategory, label)
	}
	return h.update(func(next *model.ResumeRecord) error {
		if next.Skills == nil {
			next.Skills = model.Skills{}
		}
		subs := next.Skills[category]
		if subs == nil {
			subs = map[string][]string{}
			next.Skills[category] = subs
		}
		labels := subs[subcategory]
		if i := slices.Index(labels, label); i >= 0 {
			subs[subcategory] = slices.Delete(labels, i, i+1)
		} else {
			subs[subcategory] = append(labels, label)
		}
		return nil
	})
}

func (h *Holder) SetExperienceField(index int, change ExperienceChange) error {
	return h.update(func(next *model.ResumeRecord) error {
		if err := checkIndex("experience", index, len(next.Experience)); err != nil {
			return err
		}
		return change.applyExperience(&next.Experience[index])
	})
}

func (h *Holder) SetEducationField(index int, change EducationChange) error {
	return h.update(func(next *model.ResumeRecord) error {
		if err := checkIndex("education", index, len(next.Education)); err != nil {
			return err
		}
		return change.applyEducation(&next.Education[index])
	})
}

// AddExperienceEntry appends a blank entry and returns its index.
func (h *Holder) AddExperienceEntry() int {
	var idx int
	_ = h.update(func(next *model.ResumeRecord) error {
		next.Experience = append(next.Experience, model.NewExperience())
		idx = len(next.Experience) - 1
		return nil
	})
	return idx
}

func (h *Holder) RemoveExperienceEntry(index int) error {
	return h.update(func(next *model.ResumeRecord) error {
		if err := checkIndex("experience", index, len(next.Experience)); err != nil {
			return err
		}
		next.Experience = slices.Delete(next.Experience, index, index+1)
		return nil
	})
}

// AddEducationEntry appends a blank entry and returns its index.
func (h *Holder) AddEducationEntry() int {
	var idx int
	_ = h.update(func(next *model.ResumeRecord) error {
		next.Education = append(next.Education, model.NewEducation())
		idx = len(next.Education) - 1
		return nil
	})
	return idx
}

func (h *Holder) RemoveEducationEntry(index int) error {
	return h.update(func(next *model.ResumeRecord) error {
		if err := checkIndex("education", index, len(next.Education)); err != nil {
			return err
		}
		next.Education = slices.Delete(next.Education, index, index+1)
		return nil
	})
}

func checkIndex(list string, index, n int) error {
	if index < 0 || index >= n {
		return fmt.Errorf("%w: %s[%d] (have %d)", ErrIndexOutOfRange, list, index, n)
	}
	return nil
}
