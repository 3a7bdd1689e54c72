package app

import (
	"context"
	"errors"

	"idmlx/internal/ports"
	"idmlx/internal/usecase/translate"
	"idmlx/internal/usecase/workspace"
)

// TranslateAPI drives translation of the active document. Progress is
// not polled: the service emits translate.* events the frontend
// subscribes to.
type TranslateAPI struct {
	svc *translate.Service
	ws  *workspace.Workspace
}

func NewTranslateAPI(svc *translate.Service, ws *workspace.Workspace) *TranslateAPI {
	return &TranslateAPI{svc: svc, ws: ws}
}

func (a *TranslateAPI) activeID() (string, error) {
	id, _ := a.ws.Active()
	if id == "" {
		return "", errors.New("no active document")
	}
	return id, nil
}

func (a *TranslateAPI) TranslateAll() error {
	id, err := a.activeID()
	if err != nil {
		return err
	}
	return a.svc.TranslateAll(context.Background(), id)
}

func (a *TranslateAPI) TranslateOne(index int) error {
	id, err := a.activeID()
	if err != nil {
		return err
	}
	return a.svc.TranslateOne(context.Background(), id, index, ports.ModeNormal)
}

func (a *TranslateAPI) TranslateOneReverse(index int) error {
	id, err := a.activeID()
	if err != nil {
		return err
	}
	return a.svc.TranslateOne(context.Background(), id, index, ports.ModeReverse)
}

// Busy reports whether the active document has a translation in flight.
func (a *TranslateAPI) Busy() bool {
	id, _ := a.ws.Active()
	return id != "" && a.svc.Busy(id)
}
