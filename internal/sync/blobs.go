package sync

import (
	"context"
	"fmt"

	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/store"
)

// SaveNotes replaces the whole personal to-do list.
func (c *Coordinator) SaveNotes(ctx context.Context, notes domain.NoteList) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveNotes(ctx, notes)
}

// AddNote appends a new to-do item.
func (c *Coordinator) AddNote(ctx context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	note := domain.PersonalNote{ID: nextNoteID(), Text: text}
	return c.saveNotes(ctx, append(c.st.Notes(), note))
}

// ToggleNote flips the done flag of the note with the given ID.
func (c *Coordinator) ToggleNote(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveNotes(ctx, c.st.Notes().Toggle(id))
}

// EditNote replaces the text of the note with the given ID.
func (c *Coordinator) EditNote(ctx context.Context, id int64, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveNotes(ctx, c.st.Notes().Edit(id, text))
}

// RemoveNote deletes the note with the given ID.
func (c *Coordinator) RemoveNote(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveNotes(ctx, c.st.Notes().Without(id))
}

func (c *Coordinator) saveNotes(ctx context.Context, notes domain.NoteList) error {
	id, remote, err := c.mode()
	if err != nil {
		return err
	}

	if remote == nil {
		c.writeLocal(id.UID, store.ColNotes, notes)
		return nil
	}

	if err := remote.PutBlob(ctx, id.UID, store.ColNotes, store.NotesBlob{Items: notes}); err != nil {
		c.demote(err, map[string]any{store.ColNotes: notes})
	}
	// On success the notes watcher republishes the blob.
	return nil
}

// AddCatalogEntry adds a course definition to the catalog. Returns false
// without writing when the code already exists.
func (c *Coordinator) AddCatalogEntry(ctx context.Context, entry domain.CatalogEntry) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := entry.Validate(); err != nil {
		return false, err
	}
	catalog := c.st.Catalog()
	if catalog.ContainsCode(entry.Code) {
		return false, nil
	}
	return true, c.saveCatalog(ctx, append(catalog, entry))
}

// RemoveCatalogEntry deletes the catalog entry with the given code.
// Planned courses referencing the code are left untouched.
func (c *Coordinator) RemoveCatalogEntry(ctx context.Context, code string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	catalog := c.st.Catalog()
	if !catalog.ContainsCode(code) {
		return fmt.Errorf("catalog entry %s: %w", code, ErrNotFound)
	}
	kept := make(domain.Catalog, 0, len(catalog)-1)
	for _, e := range catalog {
		if e.Code != code {
			kept = append(kept, e)
		}
	}
	return c.saveCatalog(ctx, kept)
}

// SaveCatalog replaces the whole catalog.
func (c *Coordinator) SaveCatalog(ctx context.Context, catalog domain.Catalog) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveCatalog(ctx, catalog)
}

func (c *Coordinator) saveCatalog(ctx context.Context, catalog domain.Catalog) error {
	id, remote, err := c.mode()
	if err != nil {
		return err
	}

	if remote == nil {
		c.writeLocal(id.UID, store.ColCatalog, catalog)
		return nil
	}

	if err := remote.PutBlob(ctx, id.UID, store.ColCatalog, store.CatalogBlob{Courses: catalog}); err != nil {
		c.demote(err, map[string]any{store.ColCatalog: catalog})
		return nil
	}
	// The catalog has no live subscription; apply directly after success.
	c.st.Apply(eventFor(c.st.Generation(), store.ColCatalog, catalog))
	return nil
}

// MarkNotificationRead records a task ID as acknowledged so its urgency
// alert is not repeated.
func (c *Coordinator) MarkNotificationRead(ctx context.Context, taskID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	read := c.st.ReadIDs()
	if read[taskID] {
		return nil
	}
	ids := append(c.st.ReadIDList(), taskID)
	return c.saveReadIDs(ctx, ids)
}

// SaveReadNotifications replaces the acknowledged task-ID set.
func (c *Coordinator) SaveReadNotifications(ctx context.Context, ids []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveReadIDs(ctx, ids)
}

func (c *Coordinator) saveReadIDs(ctx context.Context, ids []string) error {
	id, remote, err := c.mode()
	if err != nil {
		return err
	}

	if remote == nil {
		c.writeLocal(id.UID, store.ColReadNotif, ids)
		return nil
	}

	if err := remote.PutBlob(ctx, id.UID, store.ColReadNotif, store.ReadNotifBlob{TaskIDs: ids}); err != nil {
		c.demote(err, map[string]any{store.ColReadNotif: ids})
	}
	// On success the read-notifications watcher republishes the blob.
	return nil
}
