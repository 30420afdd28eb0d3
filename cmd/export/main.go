package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"startup_radar/internal/feature/companies/adapters"
	"startup_radar/internal/feature/companies/usecase"
	"startup_radar/internal/platform/db"
)

// defaultOutput はエクスポート先のデフォルトファイル名です。
const defaultOutput = "companies.json"

func main() {

	gormDB := db.OpenDB()
	repo := adapters.NewCompanyRepository(gormDB)
	uc := usecase.NewCompanyUsecase(repo)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	out := defaultOutput
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	companies, err := uc.ExportMap(ctx)
	if err != nil {
		log.Fatal("failed to load companies:", err)
	}

	data, err := json.MarshalIndent(companies, "", "  ")
	if err != nil {
		log.Fatal("failed to encode companies:", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		log.Fatal("failed to write output:", err)
	}
	log.Printf("exported %d companies to %s", len(companies), out)
}
