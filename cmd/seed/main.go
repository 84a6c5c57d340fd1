package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"talent-hub/internal/config"
	"talent-hub/internal/database"
	"talent-hub/internal/database/filestore"
	dbpostgres "talent-hub/internal/database/postgres"
	"talent-hub/internal/database/seeder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	backend, err := openBackend(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer backend.Close()

	doc, err := backend.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load snapshot: %v", err)
	}

	runner := seeder.Runner{Seeders: seeder.Defaults()}
	if err := runner.Run(ctx, doc); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	if err := backend.Save(ctx, doc); err != nil {
		log.Fatalf("failed to persist snapshot: %v", err)
	}

	log.Printf("seed complete | scales=%d areas=%d categories=%d skills=%d admins=%d",
		len(doc.Scales), len(doc.KnowledgeAreas), len(doc.Categories), len(doc.Skills), len(doc.Admins))
}

func openBackend(ctx context.Context, cfg config.Config) (database.SnapshotStore, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		return dbpostgres.Connect(ctx, cfg.Database)
	case config.StorageDriverFile:
		return filestore.New(cfg.Storage.DataFile)
	}
	return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
}
