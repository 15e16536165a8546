package domain

// PersonalNote is a free-form to-do item not attached to any course.
// Notes are stored as a single array document per identity, keyed by a
// monotonic unix-milli ID.
type PersonalNote struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// NoteList is the personal to-do list for one identity.
type NoteList []PersonalNote

// Toggle flips the done flag of the note with the given ID and returns the
// updated list. Unknown IDs leave the list unchanged.
func (l NoteList) Toggle(id int64) NoteList {
	out := make(NoteList, len(l))
	copy(out, l)
	for i := range out {
		if out[i].ID == id {
			out[i].Done = !out[i].Done
		}
	}
	return out
}

// Without returns the list with the note with the given ID removed.
func (l NoteList) Without(id int64) NoteList {
	out := make(NoteList, 0, len(l))
	for _, n := range l {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}

// Edit replaces the text of the note with the given ID and returns the
// updated list.
func (l NoteList) Edit(id int64, text string) NoteList {
	out := make(NoteList, len(l))
	copy(out, l)
	for i := range out {
		if out[i].ID == id {
			out[i].Text = text
		}
	}
	return out
}
