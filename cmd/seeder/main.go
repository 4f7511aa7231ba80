package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UnknownOlympus/athena/internal/client"
	"github.com/UnknownOlympus/athena/internal/config"
	"github.com/UnknownOlympus/athena/internal/metrics"
	"github.com/UnknownOlympus/athena/internal/parser"
	"github.com/UnknownOlympus/athena/internal/repository"
	"github.com/UnknownOlympus/athena/internal/services/employees"
	"github.com/prometheus/client_golang/prometheus"
)

const defaultCount = 50

type options struct {
	source string
	file   string
	count  int
	seed   uint64
}

func main() {
	var opts options
	flag.StringVar(&opts.source, "source", "", "URL of an HTML roster to import instead of generated data")
	flag.StringVar(&opts.file, "file", "", "path to an HTML roster file to import instead of generated data")
	flag.IntVar(&opts.count, "count", defaultCount, "number of demo employees to generate")
	flag.Uint64Var(&opts.seed, "seed", uint64(time.Now().UnixNano()), "random seed for generated data")
	flag.Parse()

	saved, err := run(opts)
	if err != nil {
		log.Fatalf("Failed to seed employees: %v", err)
	}

	log.Printf("✅ Seeded %d employees", saved)
}

func run(opts options) (int, error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	dbpool, err := repository.NewDatabase(
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Dbname)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to DB: %w", err)
	}
	defer dbpool.Close()

	repo := repository.NewEmployeeRepository(dbpool, metrics.NewMetrics(prometheus.NewRegistry()))
	staff := employees.NewStaff(logger, repo)

	switch {
	case opts.source != "":
		httpClient := client.CreateHTTPClient(logger, cfg.API.Timeout)
		return staff.ImportFrom(ctx, parser.NewEmployeeParser(httpClient, opts.source))
	case opts.file != "":
		return importFile(ctx, staff, opts.file)
	default:
		rnd := rand.New(rand.NewPCG(opts.seed, opts.seed>>1))
		return staff.Import(ctx, employees.GenerateEmployees(opts.count, rnd))
	}
}

func importFile(ctx context.Context, staff *employees.Staff, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()

	roster, err := parser.ParseEmployeeFromBody(f)
	if err != nil {
		return 0, fmt.Errorf("failed to parse roster file: %w", err)
	}

	return staff.Import(ctx, roster)
}
