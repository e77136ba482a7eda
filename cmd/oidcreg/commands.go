package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/aussiebroadwan/oidcreg/internal/registration/app"
	"github.com/aussiebroadwan/oidcreg/internal/registration/domain"
	"github.com/urfave/cli/v2"
)

func serve(cctx *cli.Context) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return application.Run(cctx.Context)
}

func migrate(cctx *cli.Context) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg)

	db, err := app.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info("database migrations applied successfully", "database_file", cfg.DatabaseFile)
	return nil
}

// clientView is the operator-facing projection of a client. It never carries
// credential material.
type clientView struct {
	ClientID           string    `json:"client_id"`
	Name               string    `json:"name"`
	ServiceID          string    `json:"service_id"`
	Scopes             []string  `json:"scopes"`
	SubjectStrategy    string    `json:"subject_strategy"`
	SignIDToken        bool      `json:"sign_id_token"`
	ReleasedAttributes []string  `json:"released_attributes"`
	EvaluationOrder    int       `json:"evaluation_order"`
	Description        string    `json:"description"`
	CreatedAt          time.Time `json:"created_at"`
}

func listClients(cctx *cli.Context) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	db, err := app.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	var clients []domain.RegisteredClient
	if serviceID := cctx.String("service-id"); serviceID != "" {
		clients, err = db.Clients().ListClientsByServiceID(cctx.Context, serviceID)
	} else {
		clients, err = db.Clients().ListClients(cctx.Context)
	}
	if err != nil {
		return fmt.Errorf("failed to list clients: %w", err)
	}

	views := make([]clientView, 0, len(clients))
	for _, c := range clients {
		views = append(views, clientView{
			ClientID:           c.ClientID,
			Name:               c.Name,
			ServiceID:          c.ServiceID,
			Scopes:             c.Scopes,
			SubjectStrategy:    string(c.SubjectStrategy),
			SignIDToken:        c.SignIDToken,
			ReleasedAttributes: c.ReleasedAttributes,
			EvaluationOrder:    c.EvaluationOrder,
			Description:        c.Description,
			CreatedAt:          c.CreatedAt,
		})
	}

	enc := json.NewEncoder(cctx.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(views)
}
