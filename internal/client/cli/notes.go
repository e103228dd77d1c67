package cli

import (
	"context"
	"fmt"
)

func (a *App) list(ctx context.Context) error {
	notes, err := a.api.ListNotes(ctx)
	if err != nil {
		return err
	}

	if len(notes) == 0 {
		fmt.Fprintln(a.out, "No notes yet.")
		return nil
	}

	for _, n := range notes {
		fmt.Fprintf(a.out, "%s  %s\n    %s\n", n.ID, n.Title, n.Description)
	}
	return nil
}

func (a *App) addNote(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}

	description, err := GetMultiline(a.reader, "Enter description", a.out)
	if err != nil {
		return err
	}

	note, err := a.api.AddNote(ctx, title, description)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created note %s\n", note.ID)
	return nil
}

// updateNote prompts for the fields to change; leaving one empty keeps the
// stored value.
func (a *App) updateNote(ctx context.Context, args []string) error {
	id, err := a.noteID(args, "Enter note id to update")
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Enter new title (empty keeps current)", a.out)
	if err != nil {
		return err
	}

	description, err := GetMultiline(a.reader, "Enter new description (empty keeps current)", a.out)
	if err != nil {
		return err
	}

	note, err := a.api.UpdateNote(ctx, id, title, description)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Updated note %s\n", note.ID)
	return nil
}

func (a *App) deleteNote(ctx context.Context, args []string) error {
	id, err := a.noteID(args, "Enter note id to delete")
	if err != nil {
		return err
	}

	if err := a.api.DeleteNote(ctx, id); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Note deleted.")
	return nil
}

// noteID takes the id from the command arguments or prompts for it.
func (a *App) noteID(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}
