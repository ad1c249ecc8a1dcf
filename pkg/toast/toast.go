package toast

import (
	"time"

	"github.com/google/uuid"
)

// Variant controls how a toast is presented.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Valid reports whether the variant is one of the known values.
func (v Variant) Valid() bool {
	return v == VariantDefault || v == VariantDestructive
}

// Action represents a call-to-action button attached to a toast.
// The queue treats it as opaque caller-owned data.
type Action struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Style string `json:"style"` // primary, secondary, danger
}

// Toast is the core domain model for a transient notification.
type Toast struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Variant     Variant   `json:"variant"`
	Action      *Action   `json:"action,omitempty"`
	Open        bool      `json:"open"`
	CreatedAt   time.Time `json:"created_at"`

	// OnOpenChange is invoked with the new visibility whenever the toast's
	// Open flag changes (user dismissal, auto-expiry). Never serialized.
	OnOpenChange func(open bool) `json:"-"`
}

// Patch describes a partial update to a toast. Nil fields are left untouched;
// non-nil fields overwrite the stored value.
type Patch struct {
	Title        *string
	Description  *string
	Variant      *Variant
	Action       *Action
	Open         *bool
	OnOpenChange func(open bool)
}

// apply merges the patch into t. Setting Open is handled by the queue because
// it drives a lifecycle transition, not a plain field write.
func (p Patch) apply(t *Toast) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Variant != nil && p.Variant.Valid() {
		t.Variant = *p.Variant
	}
	if p.Action != nil {
		t.Action = p.Action
	}
	if p.OnOpenChange != nil {
		t.OnOpenChange = p.OnOpenChange
	}
}

// Snapshot is an immutable copy of the queue contents, newest first.
type Snapshot []Toast

// Listener receives the post-mutation snapshot after every queue mutation.
type Listener func(Snapshot)
