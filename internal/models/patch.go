package models

import "time"

// Patches carry only the fields a caller wants to change. A nil field is left
// untouched. Apply merges the present fields, stamps UpdatedAt, and validates
// the result.

// AirdropPatch is a partial update of an Airdrop.
type AirdropPatch struct {
	Name          *string `json:"name,omitempty"`
	URL           *string `json:"url,omitempty"`
	AirdropTypeID *int64  `json:"airdrop_type_id,omitempty"`
	Chain         *string `json:"chain,omitempty"`
	WalletAddress *string `json:"wallet_address,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	Active        *bool   `json:"active,omitempty"`
}

// Apply merges p into a.
func (p AirdropPatch) Apply(a *Airdrop, now time.Time) error {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.URL != nil {
		a.URL = *p.URL
	}
	if p.AirdropTypeID != nil {
		a.AirdropTypeID = p.AirdropTypeID
	}
	if p.Chain != nil {
		a.Chain = p.Chain
	}
	if p.WalletAddress != nil {
		a.WalletAddress = p.WalletAddress
	}
	if p.Notes != nil {
		a.Notes = p.Notes
	}
	if p.Active != nil {
		a.Active = *p.Active
	}
	a.UpdatedAt = now
	return a.Validate()
}

// ProjectPatch is a partial update of a Project.
type ProjectPatch struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Status      *ProjectStatus `json:"status,omitempty"`
}

// Apply merges p into pr.
func (p ProjectPatch) Apply(pr *Project, now time.Time) error {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Description != nil {
		pr.Description = p.Description
	}
	if p.Status != nil {
		pr.Status = *p.Status
	}
	pr.UpdatedAt = now
	return pr.Validate()
}

// ProjectTaskPatch is a partial update of a ProjectTask. Position is changed
// through reordering only.
type ProjectTaskPatch struct {
	Title *string `json:"title,omitempty"`
	Done  *bool   `json:"done,omitempty"`
}

// Apply merges p into t.
func (p ProjectTaskPatch) Apply(t *ProjectTask, now time.Time) error {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Done != nil {
		t.Done = *p.Done
	}
	t.UpdatedAt = now
	return t.Validate()
}

// HouseItemPatch is a partial update of a HouseItem.
type HouseItemPatch struct {
	Title *string `json:"title,omitempty"`
	Notes *string `json:"notes,omitempty"`
	Done  *bool   `json:"done,omitempty"`
}

// Apply merges p into h.
func (p HouseItemPatch) Apply(h *HouseItem, now time.Time) error {
	if p.Title != nil {
		h.Title = *p.Title
	}
	if p.Notes != nil {
		h.Notes = p.Notes
	}
	if p.Done != nil {
		h.Done = *p.Done
	}
	h.UpdatedAt = now
	return h.Validate()
}

// IdeaPatch is a partial update of an Idea. Ideas carry no update timestamp.
type IdeaPatch struct {
	Title *string `json:"title,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p IdeaPatch) Empty() bool {
	return p.Title == nil && p.Notes == nil
}

// Apply merges p into i.
func (p IdeaPatch) Apply(i *Idea) error {
	if p.Title != nil {
		i.Title = *p.Title
	}
	if p.Notes != nil {
		i.Notes = p.Notes
	}
	return i.Validate()
}
