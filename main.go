package main

import (
	"context"
	"embed"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	dbsqlite "idmlx/internal/adapters/db/sqlite"
	"idmlx/internal/adapters/remote"
	apiapp "idmlx/internal/api/app"
	"idmlx/internal/usecase/deletion"
	exporterusecase "idmlx/internal/usecase/exporter"
	"idmlx/internal/usecase/translate"
	"idmlx/internal/usecase/uploader"
	"idmlx/internal/usecase/workspace"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	app := NewApp()

	// Local snapshot store
	db, dberr := dbsqlite.Init("data/idmlx.db")
	if dberr != nil {
		println("DB Error:", dberr.Error())
	}
	snapRepo := dbsqlite.NewSnapshotRepo(db)

	ws := workspace.New(snapRepo)
	ws.Load(context.Background())

	// Remote collaborators (upload/parse, translate, export)
	client := remote.New(os.Getenv("IDMLX_API_BASE"))
	app.SetClient(client)

	transSvc := translate.New(client, ws)
	app.SetTranslator(transSvc)
	upSvc := uploader.New(client, ws)
	exSvc := exporterusecase.New(client, ws)
	delCtrl := deletion.NewController(ws.RemoveDocument)

	// API bindings
	workspaceAPI := apiapp.NewWorkspaceAPI(ws)
	uploadAPI := apiapp.NewUploadAPI(upSvc)
	translateAPI := apiapp.NewTranslateAPI(transSvc, ws)
	exportAPI := apiapp.NewExportAPI(exSvc)
	deletionAPI := apiapp.NewDeletionAPI(delCtrl)

	err := wails.Run(&options.App{
		Title:  "idmlx",
		Width:  1400,
		Height: 900,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 16, G: 16, B: 20, A: 1},
		OnStartup:        app.startup,
		OnShutdown: func(ctx context.Context) {
			ws.Close()
		},
		Bind: []interface{}{
			app,
			workspaceAPI,
			uploadAPI,
			translateAPI,
			exportAPI,
			deletionAPI,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
