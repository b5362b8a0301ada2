package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"search-funnel/domain/funnel"
	"search-funnel/domain/models"
)

// PhraseSlot holds the web-result work for one candidate phrase.
type PhraseSlot struct {
	WebResults []GeneratedWebResult `json:"webResults"`
	Selected   funnel.Selection     `json:"selected"`
	PreLanding *GeneratedPreLanding `json:"preLanding,omitempty"`
}

// WizardDraft is the server-side state of one authoring session. Slots are
// keyed by candidate index so reordering the phrase selection keeps the work
// done for each phrase.
type WizardDraft struct {
	ID           uuid.UUID           `json:"id"`
	Title        string              `json:"title"`
	CategoryID   uint                `json:"categoryId"`
	CategoryName string              `json:"categoryName"`
	Author       string              `json:"author"`
	Content      string              `json:"content"`
	ImageURL     string              `json:"imageUrl,omitempty"`
	Candidates   []funnel.Phrase     `json:"candidates"`
	Searches     funnel.Selection    `json:"searches"`
	Slots        map[int]*PhraseSlot `json:"slots"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// SlotForWR returns the candidate index and slot holding rank wr.
func (d *WizardDraft) SlotForWR(wr int) (int, *PhraseSlot, bool) {
	candidate, ok := d.Searches.At(wr)
	if !ok {
		return 0, nil, false
	}
	if d.Slots == nil {
		d.Slots = make(map[int]*PhraseSlot)
	}
	slot, exists := d.Slots[candidate]
	if !exists {
		slot = &PhraseSlot{Selected: funnel.NewSelection(funnel.WebResultSlots)}
		d.Slots[candidate] = slot
	}
	return candidate, slot, true
}

type DraftStore interface {
	Get(ctx context.Context, id uuid.UUID) (*WizardDraft, error)
	Put(ctx context.Context, draft *WizardDraft) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StartDraftInput struct {
	Title      string
	CategoryID uint
	Author     string
}

type DraftContentInput struct {
	Content  *string
	ImageURL *string
	Phrases  []string // replaces candidates and resets the selection when set
}

type WizardService interface {
	Start(ctx context.Context, input StartDraftInput) (*WizardDraft, error)
	Get(ctx context.Context, id uuid.UUID) (*WizardDraft, error)
	Discard(ctx context.Context, id uuid.UUID) error

	GenerateContent(ctx context.Context, id uuid.UUID) (*WizardDraft, error)
	GenerateImage(ctx context.Context, id uuid.UUID) (*WizardDraft, error)
	UpdateContent(ctx context.Context, id uuid.UUID, input DraftContentInput) (*WizardDraft, error)

	ToggleSearch(ctx context.Context, id uuid.UUID, candidate int) (*WizardDraft, error)
	SetSearchOrder(ctx context.Context, id uuid.UUID, order []int) (*WizardDraft, error)

	// GenerateWebResults requires a complete phrase selection
	GenerateWebResults(ctx context.Context, id uuid.UUID, wr int) (*WizardDraft, error)
	ToggleWebResult(ctx context.Context, id uuid.UUID, wr, index int) (*WizardDraft, error)
	GeneratePreLanding(ctx context.Context, id uuid.UUID, wr int) (*WizardDraft, error)

	Save(ctx context.Context, id uuid.UUID, status models.BlogStatus) (*models.Blog, error)
}
