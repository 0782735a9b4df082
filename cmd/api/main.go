package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"sme_valuation/pkg/api/reference"
	apivaluation "sme_valuation/pkg/api/valuation"
	"sme_valuation/pkg/core/agent"
	"sme_valuation/pkg/core/store"
)

type serverConfig struct {
	Port    string       `yaml:"port"`
	Summary agent.Config `yaml:"summary"`
}

func main() {
	// Load environment variables
	godotenv.Load()

	cfg := serverConfig{Port: "8080"}
	if data, err := os.ReadFile("config/server.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			fmt.Printf("[WARNING] Failed to parse config/server.yaml: %v\n", err)
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	// History persistence is optional: without DATABASE_URL the calculate,
	// report and summary endpoints still work.
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(context.Background()); err != nil {
			fmt.Printf("[WARNING] Database init failed, history disabled: %v\n", err)
		} else {
			fmt.Println("[STORE] Valuation history enabled")
			defer store.Close()
		}
	} else {
		fmt.Println("[STORE] DATABASE_URL not set, history disabled")
	}

	agentMgr := agent.NewManager(cfg.Summary)
	apivaluation.InitHandler(agentMgr)

	// Valuation endpoints
	http.HandleFunc("/api/valuation/calculate", apivaluation.HandleCalculate)
	http.HandleFunc("/api/valuation/report", apivaluation.HandleReport)
	http.HandleFunc("/api/valuation/summary", apivaluation.HandleSummary)
	http.HandleFunc("/api/valuation/save", apivaluation.HandleSave)
	http.HandleFunc("/api/valuation/history", apivaluation.HandleHistory)
	http.HandleFunc("/api/valuation/history/get", apivaluation.HandleHistoryGet)
	http.HandleFunc("/api/valuation/delete", apivaluation.HandleDelete)

	// Reference tables for the wizard
	http.HandleFunc("/api/reference/sectors", reference.HandleSectors)
	http.HandleFunc("/api/reference/sizes", reference.HandleSizes)
	http.HandleFunc("/api/reference/scenarios", reference.HandleScenarios)
	http.HandleFunc("/api/reference/assumptions", reference.HandleAssumptions)

	addr := ":" + cfg.Port
	fmt.Printf("API server starting on %s...\n", addr)
	fmt.Println("  - POST /api/valuation/calculate")
	fmt.Println("  - POST /api/valuation/report")
	fmt.Println("  - POST /api/valuation/summary")
	fmt.Println("  - POST /api/valuation/save")
	fmt.Println("  - GET  /api/valuation/history")
	fmt.Println("  - GET  /api/reference/sectors")

	if err := http.ListenAndServe(addr, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
