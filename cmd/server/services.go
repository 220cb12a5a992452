package main

import (
	"context"
	"fmt"

	"codeberg.org/personasync/server/internal/coach"
	"codeberg.org/personasync/server/internal/llm"
	"codeberg.org/personasync/server/internal/reporting"
)

// creates and configures all AI service clients
func InitializeServices() (*Services, error) {
	clients, err := llm.NewClients(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM clients: %w", err)
	}

	return &Services{
		Clients:  clients,
		Coach:    coach.NewCoach(clients.Flash, clients.Pro),
		Reporter: reporting.NewGenerator(clients.Reporter),
	}, nil
}
