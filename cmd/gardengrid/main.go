package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/credao/gardengrid/internal/pkg/config"
	"github.com/credao/gardengrid/internal/pkg/logging"
)

const usage = `usage: gardengrid <command> [flags] <snapshot.yaml> ...

commands:
  gardens <snapshot>                      list gardens
  grid    <snapshot> <garden-id>          print the garden grid
  map     <snapshot> <garden-id> <png>    render the garden boundary
  plant   <snapshot> <garden-id>          select cells and plant a crop
  create  <snapshot>                      create a garden from a draft`

func main() {
	if len(os.Args) < 2 {
		log.Fatal(usage)
	}

	cfg, err := config.Load("gardengrid")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &app{cfg: cfg, out: os.Stdout}
	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "gardens":
		err = app.gardens(ctx, args)
	case "grid":
		err = app.grid(ctx, args)
	case "map":
		err = app.drawMap(ctx, args)
	case "plant":
		err = app.plant(ctx, args)
	case "create":
		err = app.create(ctx, args)
	case "help", "-h", "--help":
		fmt.Println(usage)
		return
	default:
		log.Fatalf("unknown command: %s\n%s", cmd, usage)
	}
	if err != nil {
		slog.Error("command failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}
