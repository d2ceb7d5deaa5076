package session

import (
	"context"

	"tracker-cli/internal/model"
	"tracker-cli/internal/view"
)

// View adapter callbacks. Adapters translate raw input into these events and
// never touch the store directly.

// OnFieldEdited reads the committed text of ref from the rendered document.
func (s *Session) OnFieldEdited(ctx context.Context, doc view.Document, ref view.FieldRef) (bool, error) {
	text, err := view.ReadField(doc, ref)
	if err != nil {
		return false, err
	}
	return s.EditField(ctx, ref, text)
}

func (s *Session) OnCellSelectRequest(ref model.CellRef) bool {
	return s.SelectCell(ref)
}

func (s *Session) OnPenaltySlotActivated(ctx context.Context, row, slot int) (bool, error) {
	return s.CyclePenalty(ctx, row, slot)
}

func (s *Session) OnFormatActionRequested(ctx context.Context, actionID string) (bool, error) {
	return s.ApplyFormat(ctx, actionID)
}
