package app

import "idmlx/internal/usecase/deletion"

// DeletionAPI lets the frontend drive the two-phase removal animation.
// RequestDelete is only called after the user confirmed in the dialog;
// SlideEnd and CollapseEnd are forwarded transition-end events.
type DeletionAPI struct{ ctrl *deletion.Controller }

func NewDeletionAPI(ctrl *deletion.Controller) *DeletionAPI { return &DeletionAPI{ctrl: ctrl} }

func (a *DeletionAPI) RequestDelete(id string, height int) bool {
	return a.ctrl.RequestDelete(id, height)
}

func (a *DeletionAPI) SlideEnd(id string, height int) bool {
	return a.ctrl.SlideDone(id, height)
}

func (a *DeletionAPI) CollapseEnd(id string) bool {
	return a.ctrl.CollapseDone(id)
}

type DeletingState struct {
	ID    string `json:"id"`
	Phase string `json:"phase"`
}

func (a *DeletionAPI) Deleting() DeletingState {
	id, phase := a.ctrl.Deleting()
	return DeletingState{ID: id, Phase: string(phase)}
}
