package main

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"idmlx/internal/adapters/remote"
	"idmlx/internal/usecase/translate"
)

// App struct
type App struct {
	ctx    context.Context
	trans  *translate.Service
	client *remote.Client
}

func NewApp() *App {
	return &App{}
}

// startup is called when the app starts. The context is saved so we
// can call the runtime methods; the translate service gets its event
// emitter here because runtime events need that context.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	if a.trans != nil {
		a.trans.SetEmitter(wailsEmitter{ctx: a.ctx})
	}
	if a.client != nil {
		go func() {
			runtime.EventsEmit(a.ctx, "api.health", a.client.Health(ctx))
		}()
	}
}

// SetTranslator allows main() to provide the translate service so the
// emitter can be wired on startup.
func (a *App) SetTranslator(t *translate.Service) {
	a.trans = t
}

// SetClient provides the remote client used for the startup health check.
func (a *App) SetClient(c *remote.Client) {
	a.client = c
}

type wailsEmitter struct{ ctx context.Context }

func (w wailsEmitter) Emit(name string, payload any) {
	runtime.EventsEmit(w.ctx, name, payload)
}
