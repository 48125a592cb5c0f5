package mapping

// Merge composes a freshly produced step mapping onto an accumulated
// original-to-current mapping, producing a new mapping from the original
// input to the step's output (spec §4.2, C2).
//
// acc may be nil, in which case step is returned unchanged (the very
// first rewrite in a pipeline). A non-empty acc paired with an empty step
// is an error: there is nothing for the accumulator's positions to resolve
// against. An empty acc with an empty step (empty input text) yields an
// empty mapping.
func Merge(acc, step List) (List, error) {
	if acc == nil {
		return step, nil
	}
	if len(step) == 0 {
		if len(acc) == 0 {
			return acc, nil
		}
		return nil, &EmptyStepMappingError{}
	}

	out := make(List, len(acc))
	stepLen := len(step)
	tailEnd := step[stepLen-1].End

	for i, a := range acc {
		if a.Deleted {
			lo := a.Start
			if lo < stepLen {
				out[i] = DeletedAt(step[lo].Start, a.Rules...)
			} else {
				out[i] = DeletedAt(tailEnd, a.Rules...)
			}
			continue
		}

		lo, hi := a.Start, a.End
		rules := cloneRules(a.Rules)
		allDeleted := true
		for k := lo; k < hi; k++ {
			rules = append(rules, step[k].Rules...)
			if !step[k].Deleted {
				allDeleted = false
			}
		}

		out[i] = Span{
			Start:   step[lo].Start,
			End:     step[hi-1].End,
			Deleted: allDeleted,
			Rules:   rules,
		}
	}

	return out, nil
}
